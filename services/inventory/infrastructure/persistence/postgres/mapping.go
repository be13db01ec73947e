package postgres

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/postgres/db"
)

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func rowToItem(row db.InventoryItem) *models.Item {
	return &models.Item{
		ID:            row.ID,
		Name:          models.ItemName(row.Name),
		Type:          models.ItemType(row.ItemType),
		Unit:          row.Unit,
		Barcode:       stringPtr(row.Barcode),
		MinStockLevel: row.MinStockLevel,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
	}
}

func rowToLocation(row db.InventoryStorageLocation) *models.StorageLocation {
	return &models.StorageLocation{
		ID:          row.ID,
		Name:        row.Name,
		Description: stringPtr(row.Description),
		Zone:        stringPtr(row.Zone),
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}

func rowToTransaction(row db.InventoryTransaction) *models.Transaction {
	txn := &models.Transaction{
		ID:             row.ID,
		ItemID:         row.ItemID,
		LocationID:     row.LocationID,
		Type:           models.TransactionType(row.TransactionType),
		Quantity:       row.Quantity,
		BeforeQuantity: row.BeforeQuantity,
		AfterQuantity:  row.AfterQuantity,
		OperatorID:     row.OperatorID,
		Notes:          stringPtr(row.Notes),
		IdempotencyKey: stringPtr(row.IdempotencyKey),
		CreatedAt:      row.CreatedAt,
	}
	if row.ReferenceType.Valid && row.ReferenceID.Valid {
		txn.Reference = &models.Reference{Type: row.ReferenceType.String, ID: row.ReferenceID.UUID}
	}
	return txn
}

func rowToPurchaseRequest(row db.InventoryPurchaseRequest) *models.PurchaseRequest {
	return &models.PurchaseRequest{
		ID:            row.ID,
		RequestNumber: row.RequestNumber,
		ItemID:        row.ItemID,
		Quantity:      row.Quantity,
		Reason:        row.Reason,
		Status:        models.PurchaseRequestStatus(row.Status),
		CreatedBy:     uuidPtr(row.CreatedBy),
		SourceEventID: uuidPtr(row.SourceEventID),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
