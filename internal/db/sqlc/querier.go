package db

import (
	"context"
)

type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsersByBranch(ctx context.Context, branchID *int64) ([]User, error)

	CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error)
	GetBranchByID(ctx context.Context, id int64) (Branch, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	UpdateBranch(ctx context.Context, arg UpdateBranchParams) (Branch, error)

	CreatePatient(ctx context.Context, arg CreatePatientParams) (Patient, error)
	GetPatientByID(ctx context.Context, id int64) (Patient, error)
	GetPatientByIDNumber(ctx context.Context, idNumber string) (Patient, error)
	ListPatients(ctx context.Context, arg ListPatientsParams) ([]Patient, error)
	UpdatePatient(ctx context.Context, arg UpdatePatientParams) (Patient, error)
	DeletePatient(ctx context.Context, id int64) error

	CreateConsultation(ctx context.Context, arg CreateConsultationParams) (Consultation, error)
	GetConsultationByID(ctx context.Context, id int64) (Consultation, error)
	ListConsultations(ctx context.Context, arg ListConsultationsParams) ([]Consultation, error)
	UpdateConsultationVitals(ctx context.Context, arg UpdateConsultationVitalsParams) (Consultation, error)
	ReferConsultation(ctx context.Context, arg ReferConsultationParams) (Consultation, error)
	DiagnoseConsultation(ctx context.Context, arg DiagnoseConsultationParams) (Consultation, error)
	CompleteConsultation(ctx context.Context, id int64) (Consultation, error)
	CountConsultations(ctx context.Context, arg CountConsultationsParams) (int64, error)

	CreateMedicine(ctx context.Context, arg CreateMedicineParams) (Medicine, error)
	GetMedicineByID(ctx context.Context, id int64) (Medicine, error)
	GetMedicineBySlug(ctx context.Context, slug string) (Medicine, error)
	ListMedicines(ctx context.Context) ([]Medicine, error)
	UpdateMedicine(ctx context.Context, arg UpdateMedicineParams) (Medicine, error)
	GetBranchInventory(ctx context.Context, arg GetBranchInventoryParams) (BranchInventory, error)
	ListBranchInventory(ctx context.Context, branchID int64) ([]ListBranchInventoryRow, error)
	ListLowStockInventory(ctx context.Context, branchID int64) ([]ListBranchInventoryRow, error)
	AddInventoryQuantity(ctx context.Context, arg AddInventoryQuantityParams) (BranchInventory, error)

	CreateStockBatch(ctx context.Context, arg CreateStockBatchParams) (StockBatch, error)
	ListStockBatches(ctx context.Context, arg ListStockBatchesParams) ([]StockBatch, error)
	SummarizeStockMovement(ctx context.Context, arg SummarizeStockMovementParams) ([]SummarizeStockMovementRow, error)

	CreateBranchRequest(ctx context.Context, arg CreateBranchRequestParams) (BranchRequest, error)
	GetBranchRequestByID(ctx context.Context, id int64) (BranchRequest, error)
	ListPendingBranchRequests(ctx context.Context, toBranchID int64) ([]BranchRequest, error)
	ListBranchRequestHistory(ctx context.Context, branchID int64) ([]BranchRequest, error)
	UpdateBranchRequestStatus(ctx context.Context, arg UpdateBranchRequestStatusParams) (BranchRequest, error)

	CreateNotification(ctx context.Context, arg CreateNotificationParams) (Notification, error)
	ListNotificationsByBranch(ctx context.Context, arg ListNotificationsByBranchParams) ([]Notification, error)
	ListLowStockNotifications(ctx context.Context, arg ListNotificationsByBranchParams) ([]Notification, error)
	MarkBranchNotificationsRead(ctx context.Context, branchID int64) (int64, error)
}

var _ Querier = (*Queries)(nil)
