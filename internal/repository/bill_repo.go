package repository

import (
	"cafe-management-backend/internal/models"

	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// Expose DB if needed
func (r *BillRepository) DB() *gorm.DB {
	return r.db
}

// Save inserts a new bill row
func (r *BillRepository) Save(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// FindByID fetch a single bill by its numeric id
func (r *BillRepository) FindByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.First(&bill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// FindByUUID fetch a single bill by its artifact key
func (r *BillRepository) FindByUUID(uuid string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.First(&bill, "uuid = ?", uuid).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Bill{}, "id = ?", id).Error
}

// GetAll returns every bill, newest first
func (r *BillRepository) GetAll() ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Order("id DESC").Find(&bills).Error
	return bills, err
}

// GetByCreatedBy returns the bills created by one user, newest first
func (r *BillRepository) GetByCreatedBy(username string) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("created_by = ?", username).Order("id DESC").Find(&bills).Error
	return bills, err
}

// Count is used by the dashboard summary
func (r *BillRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).Count(&count).Error
	return count, err
}
