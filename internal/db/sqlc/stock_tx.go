package db

import (
	"context"
	"fmt"
	"time"

	"github.com/uicmedicare/medicare-BE/internal/util"
)

type StockInTxParams struct {
	BranchID   int64
	MedicineID int64
	Quantity   int32
	Supplier   *string
	ExpiryDate *time.Time
	CreatedBy  string
}

type StockInTxResult struct {
	Batch     StockBatch      `json:"batch"`
	Inventory BranchInventory `json:"inventory"`
}

// StockInTx records a stock-in batch and increments the branch inventory row.
func (store *SQLStore) StockInTx(ctx context.Context, arg StockInTxParams) (StockInTxResult, error) {
	var result StockInTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		var err error

		// 1. Record the batch
		result.Batch, err = qTx.CreateStockBatch(ctx, CreateStockBatchParams{
			BatchCode:  util.GenerateBatchCode("in"),
			BranchID:   arg.BranchID,
			MedicineID: arg.MedicineID,
			Direction:  StockDirectionIn,
			Quantity:   arg.Quantity,
			Supplier:   arg.Supplier,
			ExpiryDate: arg.ExpiryDate,
			CreatedBy:  arg.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create stock-in batch: %w", err)
		}

		// 2. Increment the inventory row
		result.Inventory, err = qTx.AddInventoryQuantity(ctx, AddInventoryQuantityParams{
			BranchID:   arg.BranchID,
			MedicineID: arg.MedicineID,
			Quantity:   arg.Quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}

		return nil
	})

	return result, err
}

type StockOutTxParams struct {
	BranchID   int64
	MedicineID int64
	Quantity   int32
	Reason     string
	CreatedBy  string
}

type StockOutTxResult struct {
	Batch     StockBatch      `json:"batch"`
	Inventory BranchInventory `json:"inventory"`
}

// StockOutTx records a stock-out batch and decrements the branch inventory
// row. Fails with ErrInsufficientStock if the branch holds less than the
// requested quantity.
func (store *SQLStore) StockOutTx(ctx context.Context, arg StockOutTxParams) (StockOutTxResult, error) {
	var result StockOutTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		// 1. Check quantity on hand
		inventory, err := qTx.GetBranchInventory(ctx, GetBranchInventoryParams{
			BranchID:   arg.BranchID,
			MedicineID: arg.MedicineID,
		})
		if err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}

		if inventory.QuantityOnHand < arg.Quantity {
			return ErrInsufficientStock
		}

		// 2. Record the batch
		result.Batch, err = qTx.CreateStockBatch(ctx, CreateStockBatchParams{
			BatchCode:  util.GenerateBatchCode("out"),
			BranchID:   arg.BranchID,
			MedicineID: arg.MedicineID,
			Direction:  StockDirectionOut,
			Quantity:   arg.Quantity,
			Reason:     util.StringPointer(arg.Reason),
			CreatedBy:  arg.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create stock-out batch: %w", err)
		}

		// 3. Decrement the inventory row
		result.Inventory, err = qTx.AddInventoryQuantity(ctx, AddInventoryQuantityParams{
			BranchID:   arg.BranchID,
			MedicineID: arg.MedicineID,
			Quantity:   -arg.Quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}

		return nil
	})

	return result, err
}
