package billing

import (
	"errors"
	"fmt"
	"strconv"

	"cafe-management-backend/internal/auth"
	"cafe-management-backend/internal/models"
	"cafe-management-backend/internal/report"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrValidation marks a request missing one of the required bill fields.
var ErrValidation = errors.New("required data not found")

// GenerateRequest is the typed payload for report generation. IsGenerate
// left nil behaves like true: a new bill is persisted under a fresh uuid.
// IsGenerate explicitly false reuses the supplied uuid and skips
// persistence, which is how existing artifacts get regenerated.
type GenerateRequest struct {
	Name           string `json:"name"`
	ContactNumber  string `json:"contactNumber"`
	Email          string `json:"email"`
	PaymentMethod  string `json:"paymentMethod"`
	ProductDetails string `json:"productDetails"`
	TotalAmount    string `json:"totalAmount"`
	IsGenerate     *bool  `json:"isGenerate,omitempty"`
	UUID           string `json:"uuid,omitempty"`
}

func (r GenerateRequest) Validate() error {
	if r.Name == "" || r.ContactNumber == "" || r.Email == "" ||
		r.PaymentMethod == "" || r.ProductDetails == "" || r.TotalAmount == "" {
		return ErrValidation
	}
	return nil
}

// BillStore is the persistence collaborator.
type BillStore interface {
	Save(bill *models.Bill) error
	FindByID(id uint) (*models.Bill, error)
	FindByUUID(uuid string) (*models.Bill, error)
	DeleteByID(id uint) error
	GetAll() ([]models.Bill, error)
	GetByCreatedBy(username string) ([]models.Bill, error)
}

// ReceiptStore is the artifact collaborator: one PDF per bill uuid.
type ReceiptStore interface {
	Exists(uuid string) bool
	Read(uuid string) ([]byte, error)
	Render(uuid string, receipt report.Receipt) error
}

type BillService struct {
	store    BillStore
	receipts ReceiptStore
}

func NewBillService(store BillStore, receipts ReceiptStore) *BillService {
	return &BillService{store: store, receipts: receipts}
}

// GenerateReport validates the request, persists a new bill unless the
// request reuses an existing uuid, renders the receipt PDF and returns
// the artifact key. Persisting and rendering are two separate writes; a
// failure between them leaves a bill row without an artifact (see
// ReconcileArtifacts).
func (s *BillService) GenerateReport(caller auth.Caller, req GenerateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	fileName := req.UUID
	if req.IsGenerate == nil || *req.IsGenerate {
		fileName = uuid.New().String()
		req.UUID = fileName
		if err := s.insertBill(caller, req); err != nil {
			return "", err
		}
	}

	if err := s.receipts.Render(fileName, receiptFrom(req)); err != nil {
		return "", fmt.Errorf("render receipt %s: %w", fileName, err)
	}

	logrus.WithFields(logrus.Fields{"uuid": fileName, "user": caller.Username}).
		Info("bill report generated")
	return fileName, nil
}

// GetPDF returns the receipt bytes for a bill, regenerating the artifact
// on demand when it is missing. The regeneration request is hydrated from
// the stored bill row when the caller did not resend the full field set.
func (s *BillService) GetPDF(caller auth.Caller, req GenerateRequest) ([]byte, error) {
	if req.UUID == "" && req.Validate() != nil {
		return nil, ErrValidation
	}

	if s.receipts.Exists(req.UUID) {
		return s.receipts.Read(req.UUID)
	}

	if req.Validate() != nil {
		bill, err := s.store.FindByUUID(req.UUID)
		if err != nil {
			return nil, fmt.Errorf("hydrate bill %s: %w", req.UUID, err)
		}
		req = requestFrom(bill)
	}

	reuse := false
	req.IsGenerate = &reuse
	if _, err := s.GenerateReport(caller, req); err != nil {
		return nil, err
	}
	return s.receipts.Read(req.UUID)
}

// GetBills lists all bills for admins and only the caller's own bills
// otherwise. A failed store query degrades to an empty list, not an
// error; the cause is only logged.
func (s *BillService) GetBills(caller auth.Caller) []models.Bill {
	var (
		bills []models.Bill
		err   error
	)
	if caller.Admin {
		bills, err = s.store.GetAll()
	} else {
		bills, err = s.store.GetByCreatedBy(caller.Username)
	}
	if err != nil {
		logrus.WithError(err).Error("bill list query failed")
		return []models.Bill{}
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills
}

// DeleteBill removes the bill row. Deleting an absent id reports success
// with an informational message; the PDF artifact is never cleaned up.
func (s *BillService) DeleteBill(id uint) (string, error) {
	if _, err := s.store.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Bill id doesn't exist", nil
		}
		return "", err
	}
	if err := s.store.DeleteByID(id); err != nil {
		return "", err
	}
	return "Bill deleted successfully", nil
}

// ReconcileArtifacts reports bill uuids with no artifact on disk, the
// gap the non-transactional persist+render can leave behind. Read-only.
func (s *BillService) ReconcileArtifacts() ([]string, error) {
	bills, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	missing := []string{}
	for _, bill := range bills {
		if !s.receipts.Exists(bill.UUID) {
			missing = append(missing, bill.UUID)
		}
	}
	return missing, nil
}

func (s *BillService) insertBill(caller auth.Caller, req GenerateRequest) error {
	total, err := strconv.Atoi(req.TotalAmount)
	if err != nil {
		return fmt.Errorf("parse total amount %q: %w", req.TotalAmount, err)
	}
	bill := &models.Bill{
		UUID:           req.UUID,
		Name:           req.Name,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		PaymentMethod:  req.PaymentMethod,
		ProductDetails: datatypes.JSON(req.ProductDetails),
		Total:          total,
		CreatedBy:      caller.Username,
	}
	return s.store.Save(bill)
}

func receiptFrom(req GenerateRequest) report.Receipt {
	return report.Receipt{
		Name:           req.Name,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		PaymentMethod:  req.PaymentMethod,
		ProductDetails: req.ProductDetails,
		TotalAmount:    req.TotalAmount,
	}
}

func requestFrom(bill *models.Bill) GenerateRequest {
	return GenerateRequest{
		Name:           bill.Name,
		ContactNumber:  bill.ContactNumber,
		Email:          bill.Email,
		PaymentMethod:  bill.PaymentMethod,
		ProductDetails: string(bill.ProductDetails),
		TotalAmount:    strconv.Itoa(bill.Total),
		UUID:           bill.UUID,
	}
}
