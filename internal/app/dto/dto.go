package dto

import (
	"time"

	"paperhelp/internal/app/pricing"
	"paperhelp/internal/app/stats"

	"github.com/shopspring/decimal"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Сессия ============

type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SessionResponse struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"` // client, admin

	// Заполняются только при входе
	Token     string `json:"token,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// ============ Калькулятор ============

type CatalogResponse struct {
	pricing.Catalog
	WordsPerPage int `json:"words_per_page"`
	MinPages     int `json:"min_pages"`
	MaxPages     int `json:"max_pages"`
}

type QuoteResponse struct {
	Config pricing.OrderConfig `json:"config"`
	Words  int                 `json:"words"`
	Quote  pricing.Quote       `json:"quote"`
	Price  string              `json:"price"` // итог с двумя знаками
}

// ============ Услуги ============

type CreateServiceRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	Icon       string          `json:"icon" binding:"max=16"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type UpdateServiceRequest struct {
	Name       *string          `json:"name" binding:"omitempty,max=100"`
	Icon       *string          `json:"icon" binding:"omitempty,max=16"`
	Multiplier *decimal.Decimal `json:"multiplier"`
}

// ============ Образцы и статьи ============

type SampleRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Subject       string `json:"subject" binding:"required"`
	AcademicLevel string `json:"academic_level" binding:"required"`
	Pages         int    `json:"pages" binding:"required,gte=1"`
	FileURL       string `json:"file_url"`
	IsFeatured    bool   `json:"is_featured"`
}

type SampleResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Subject       string `json:"subject"`
	AcademicLevel string `json:"academic_level"`
	Pages         int    `json:"pages"`
	FileURL       string `json:"file_url"`
	IsFeatured    bool   `json:"is_featured"`
}

type ArticleRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Author      string     `json:"author" binding:"max=100"`
	Category    string     `json:"category" binding:"max=100"`
	Date        *time.Time `json:"date"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" binding:"required"`
	ImageURL    string     `json:"image_url"`
	IsPublished bool       `json:"is_published"`
}

type ArticleResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"` // только для одной статьи
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published"`
}

// ============ Заказы ============

type PlaceOrderRequest struct {
	pricing.OrderConfig
	ProjectDetails string `json:"project_details" binding:"max=10000"`
}

type AttachmentResponse struct {
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
	FileURL  string `json:"file_url"`
}

type MessageResponse struct {
	ID         uint                `json:"id"`
	Sender     string              `json:"sender"`
	Timestamp  time.Time           `json:"timestamp"`
	Text       string              `json:"text,omitempty"`
	Attachment *AttachmentResponse `json:"attachment,omitempty"`
}

type OrderResponse struct {
	ID             string            `json:"id"`
	UserEmail      string            `json:"user_email"`
	UserName       string            `json:"user_name"`
	UserAvatar     string            `json:"user_avatar"`
	ServiceName    string            `json:"service_name"`
	SubjectName    string            `json:"subject_name"`
	Status         string            `json:"status"`
	Deadline       time.Time         `json:"deadline"`
	TimeLeft       string            `json:"time_left,omitempty"`
	Pages          int               `json:"pages"`
	Words          int               `json:"words"`
	Price          string            `json:"price"`
	ProjectDetails string            `json:"project_details,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	Messages       []MessageResponse `json:"messages,omitempty"` // только для одного заказа
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// Администратор может писать от своего имени или от имени автора
type AdminMessageRequest struct {
	Text   string `json:"text" binding:"required,max=4000"`
	Sender string `json:"sender" binding:"omitempty,oneof=admin writer"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ============ Панель администратора ============

type DashboardResponse struct {
	stats.Summary
	ActiveList    []OrderResponse `json:"active_list"`
	CompletedList []OrderResponse `json:"completed_list"`
}

type RevenueResponse struct {
	ByService []stats.RevenueItem `json:"by_service"`
	BySubject []stats.RevenueItem `json:"by_subject"`
}

type CustomerListResponse struct {
	Customers []stats.Customer `json:"customers"`
	Total     int              `json:"total"`
}
