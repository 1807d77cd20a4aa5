package models

import (
	"strings"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const defaultAdminPassword = "admin123"

// DefaultCategoryNames 空库时初始化的分类
var DefaultCategoryNames = []string{"Vegetables", "Dairy", "Bakery", "Fruits"}

// InitDefaultData 初始化默认管理员与基础分类
func InitDefaultData(adminEmail, adminPassword string) error {
	if err := initDefaultAdmin(adminEmail, adminPassword); err != nil {
		return err
	}
	return initDefaultCategories()
}

func initDefaultAdmin(email, password string) error {
	var count int64
	if err := DB.Model(&User{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == defaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}
	return nil
}

func initDefaultCategories() error {
	var count int64
	if err := DB.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	categories := make([]Category, 0, len(DefaultCategoryNames))
	for _, name := range DefaultCategoryNames {
		categories = append(categories, Category{Name: name})
	}
	if err := DB.Create(&categories).Error; err != nil {
		return err
	}
	logger.Infow("default_categories_created", "count", len(categories))
	return nil
}
