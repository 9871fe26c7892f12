package db

import (
	"fmt"
	"time"
)

type UserRole string

const (
	UserRoleNurse  UserRole = "nurse"
	UserRoleDoctor UserRole = "doctor"
	UserRoleAdmin  UserRole = "admin"
)

func (e *UserRole) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = UserRole(s)
	case string:
		*e = UserRole(s)
	default:
		return fmt.Errorf("unsupported scan type for UserRole: %T", src)
	}
	return nil
}

func IsValidUserRole(value string) error {
	switch UserRole(value) {
	case UserRoleNurse, UserRoleDoctor, UserRoleAdmin:
		return nil
	}
	return fmt.Errorf("invalid user role: %s", value)
}

type PatientType string

const (
	PatientTypeStudent  PatientType = "student"
	PatientTypeEmployee PatientType = "employee"
)

func (e *PatientType) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = PatientType(s)
	case string:
		*e = PatientType(s)
	default:
		return fmt.Errorf("unsupported scan type for PatientType: %T", src)
	}
	return nil
}

func IsValidPatientType(value string) error {
	switch PatientType(value) {
	case PatientTypeStudent, PatientTypeEmployee:
		return nil
	}
	return fmt.Errorf("invalid patient type: %s", value)
}

type ConsultationStatus string

const (
	ConsultationStatusOpen      ConsultationStatus = "open"
	ConsultationStatusReferred  ConsultationStatus = "referred"
	ConsultationStatusCompleted ConsultationStatus = "completed"
)

func (e *ConsultationStatus) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = ConsultationStatus(s)
	case string:
		*e = ConsultationStatus(s)
	default:
		return fmt.Errorf("unsupported scan type for ConsultationStatus: %T", src)
	}
	return nil
}

type NullConsultationStatus struct {
	ConsultationStatus ConsultationStatus
	Valid              bool
}

func IsValidConsultationStatus(value string) error {
	switch ConsultationStatus(value) {
	case ConsultationStatusOpen, ConsultationStatusReferred, ConsultationStatusCompleted:
		return nil
	}
	return fmt.Errorf("invalid consultation status: %s", value)
}

type StockDirection string

const (
	StockDirectionIn  StockDirection = "in"
	StockDirectionOut StockDirection = "out"
)

func (e *StockDirection) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = StockDirection(s)
	case string:
		*e = StockDirection(s)
	default:
		return fmt.Errorf("unsupported scan type for StockDirection: %T", src)
	}
	return nil
}

type BranchRequestStatus string

const (
	BranchRequestStatusPending  BranchRequestStatus = "pending"
	BranchRequestStatusApproved BranchRequestStatus = "approved"
	BranchRequestStatusRejected BranchRequestStatus = "rejected"
)

func (e *BranchRequestStatus) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = BranchRequestStatus(s)
	case string:
		*e = BranchRequestStatus(s)
	default:
		return fmt.Errorf("unsupported scan type for BranchRequestStatus: %T", src)
	}
	return nil
}

type NullBranchRequestStatus struct {
	BranchRequestStatus BranchRequestStatus
	Valid               bool
}

func IsValidBranchRequestStatus(value string) error {
	switch BranchRequestStatus(value) {
	case BranchRequestStatusPending, BranchRequestStatusApproved, BranchRequestStatusRejected:
		return nil
	}
	return fmt.Errorf("invalid branch request status: %s", value)
}

type NotificationType string

const (
	NotificationTypeInfo     NotificationType = "info"
	NotificationTypeWarning  NotificationType = "warning"
	NotificationTypeSuccess  NotificationType = "success"
	NotificationTypeError    NotificationType = "error"
	NotificationTypeRequest  NotificationType = "request"
	NotificationTypeLowStock NotificationType = "low_stock"
)

func (e *NotificationType) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = NotificationType(s)
	case string:
		*e = NotificationType(s)
	default:
		return fmt.Errorf("unsupported scan type for NotificationType: %T", src)
	}
	return nil
}

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	HashedPassword *string   `json:"-"`
	Role           UserRole  `json:"role"`
	BranchID       *int64    `json:"branch_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type Branch struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber *string   `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type Patient struct {
	ID            int64       `json:"id"`
	PatientType   PatientType `json:"patient_type"`
	IDNumber      string      `json:"id_number"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Email         *string     `json:"email"`
	Department    string      `json:"department"`
	YearLevel     *int32      `json:"year_level"`
	ContactNumber *string     `json:"contact_number"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type Consultation struct {
	ID              int64              `json:"id"`
	PatientID       int64              `json:"patient_id"`
	BranchID        int64              `json:"branch_id"`
	NurseID         string             `json:"nurse_id"`
	DoctorID        *string            `json:"doctor_id"`
	ChiefComplaint  string             `json:"chief_complaint"`
	Temperature     *string            `json:"temperature"`
	BloodPressure   *string            `json:"blood_pressure"`
	PulseRate       *int32             `json:"pulse_rate"`
	RespiratoryRate *int32             `json:"respiratory_rate"`
	Diagnosis       *string            `json:"diagnosis"`
	Remarks         *string            `json:"remarks"`
	Status          ConsultationStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type Medicine struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Category          string    `json:"category"`
	Unit              string    `json:"unit"`
	LowStockThreshold int32     `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
}

type BranchInventory struct {
	BranchID       int64     `json:"branch_id"`
	MedicineID     int64     `json:"medicine_id"`
	QuantityOnHand int32     `json:"quantity_on_hand"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StockBatch struct {
	ID         int64          `json:"id"`
	BatchCode  string         `json:"batch_code"`
	BranchID   int64          `json:"branch_id"`
	MedicineID int64          `json:"medicine_id"`
	Direction  StockDirection `json:"direction"`
	Quantity   int32          `json:"quantity"`
	Reason     *string        `json:"reason"`
	Supplier   *string        `json:"supplier"`
	ExpiryDate *time.Time     `json:"expiry_date"`
	CreatedBy  string         `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
}

type BranchRequest struct {
	ID                int64               `json:"branch_request_id"`
	FromBranchID      int64               `json:"from_branch_id"`
	ToBranchID        int64               `json:"to_branch_id"`
	MedicineID        int64               `json:"medicine_id"`
	QuantityRequested int32               `json:"quantity_requested"`
	Status            BranchRequestStatus `json:"status"`
	DecidedBy         *string             `json:"decided_by"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         *time.Time          `json:"updated_at"`
}

type Notification struct {
	ID          int64            `json:"id"`
	BranchID    int64            `json:"branch_id"`
	Type        NotificationType `json:"type"`
	Title       *string          `json:"title"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"is_read"`
	RequestID   *int64           `json:"request_id"`
	ReferenceID *int64           `json:"reference_id"`
	CreatedAt   time.Time        `json:"created_at"`
}
