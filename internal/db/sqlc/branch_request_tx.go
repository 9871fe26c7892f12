package db

import (
	"context"
	"fmt"

	"github.com/uicmedicare/medicare-BE/internal/util"
)

type ApproveBranchRequestTxParams struct {
	RequestID  int64
	ApprovedBy string
}

// ApproveBranchRequestTx approves a pending branch request and moves the
// requested quantity from the fulfilling branch to the requesting branch:
// a stock-out batch at to_branch and a matching stock-in batch at from_branch.
func (store *SQLStore) ApproveBranchRequestTx(ctx context.Context, arg ApproveBranchRequestTxParams) (BranchRequest, error) {
	var approved BranchRequest

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		request, err := qTx.GetBranchRequestByID(ctx, arg.RequestID)
		if err != nil {
			return fmt.Errorf("failed to get branch request: %w", err)
		}

		if request.Status != BranchRequestStatusPending {
			return fmt.Errorf("branch request %d is already %s", request.ID, request.Status)
		}

		// 1. Verify the fulfilling branch holds enough stock
		inventory, err := qTx.GetBranchInventory(ctx, GetBranchInventoryParams{
			BranchID:   request.ToBranchID,
			MedicineID: request.MedicineID,
		})
		if err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}
		if inventory.QuantityOnHand < request.QuantityRequested {
			return ErrInsufficientStock
		}

		// 2. Stock out at the fulfilling branch
		_, err = qTx.CreateStockBatch(ctx, CreateStockBatchParams{
			BatchCode:  util.GenerateBatchCode("out"),
			BranchID:   request.ToBranchID,
			MedicineID: request.MedicineID,
			Direction:  StockDirectionOut,
			Quantity:   request.QuantityRequested,
			Reason:     util.StringPointer(fmt.Sprintf("transferred to branch %d [req: %d]", request.FromBranchID, request.ID)),
			CreatedBy:  arg.ApprovedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create transfer stock-out batch: %w", err)
		}

		_, err = qTx.AddInventoryQuantity(ctx, AddInventoryQuantityParams{
			BranchID:   request.ToBranchID,
			MedicineID: request.MedicineID,
			Quantity:   -request.QuantityRequested,
		})
		if err != nil {
			return fmt.Errorf("failed to decrement inventory: %w", err)
		}

		// 3. Stock in at the requesting branch
		_, err = qTx.CreateStockBatch(ctx, CreateStockBatchParams{
			BatchCode:  util.GenerateBatchCode("in"),
			BranchID:   request.FromBranchID,
			MedicineID: request.MedicineID,
			Direction:  StockDirectionIn,
			Quantity:   request.QuantityRequested,
			Reason:     util.StringPointer(fmt.Sprintf("transferred from branch %d [req: %d]", request.ToBranchID, request.ID)),
			CreatedBy:  arg.ApprovedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create transfer stock-in batch: %w", err)
		}

		_, err = qTx.AddInventoryQuantity(ctx, AddInventoryQuantityParams{
			BranchID:   request.FromBranchID,
			MedicineID: request.MedicineID,
			Quantity:   request.QuantityRequested,
		})
		if err != nil {
			return fmt.Errorf("failed to increment inventory: %w", err)
		}

		// 4. Mark the request approved
		approved, err = qTx.UpdateBranchRequestStatus(ctx, UpdateBranchRequestStatusParams{
			ID:        request.ID,
			Status:    BranchRequestStatusApproved,
			DecidedBy: arg.ApprovedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to update branch request status: %w", err)
		}

		return nil
	})

	return approved, err
}

type RejectBranchRequestTxParams struct {
	RequestID  int64
	RejectedBy string
}

// RejectBranchRequestTx rejects a pending branch request. No stock moves.
func (store *SQLStore) RejectBranchRequestTx(ctx context.Context, arg RejectBranchRequestTxParams) (BranchRequest, error) {
	var rejected BranchRequest

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		request, err := qTx.GetBranchRequestByID(ctx, arg.RequestID)
		if err != nil {
			return fmt.Errorf("failed to get branch request: %w", err)
		}

		if request.Status != BranchRequestStatusPending {
			return fmt.Errorf("branch request %d is already %s", request.ID, request.Status)
		}

		rejected, err = qTx.UpdateBranchRequestStatus(ctx, UpdateBranchRequestStatusParams{
			ID:        request.ID,
			Status:    BranchRequestStatusRejected,
			DecidedBy: arg.RejectedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to update branch request status: %w", err)
		}

		return nil
	})

	return rejected, err
}
