package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paperhelp/internal/app/config"
	"paperhelp/internal/app/ds"
	"paperhelp/internal/app/dto"
	"paperhelp/internal/app/middleware"
	"paperhelp/internal/app/pricing"
	"paperhelp/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)

const (
	demoEmail  = "demo@user.com"
	adminEmail = "admin@user.com"
)

var testAuth = middleware.NewAuthMiddleware(nil, config.JWTConfig{Token: "test-secret", ExpiresIn: time.Hour}, adminEmail)

// bearer выдаёт заголовок Authorization для email, как после входа
func bearer(email string) string {
	token, _, err := testAuth.IssueToken(middleware.NewCurrentUser(email, adminEmail))
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemory(repository.Seed(testNow))
	h := NewHandler(store, nil, nil, testAuth, decimal.NewFromInt(12))
	h.now = func() time.Time { return testNow }

	r := gin.New()
	h.RegisterRoutes(r)
	return r, store
}

func do(r *gin.Engine, method, path, email string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("Authorization", bearer(email))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// upload отправляет multipart-форму с файлом заданного размера и подписью
func upload(t *testing.T, r *gin.Engine, path, email, name string, size int, text string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	if text != "" {
		require.NoError(t, mw.WriteField("text", text))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if email != "" {
		req.Header.Set("Authorization", bearer(email))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func essay() pricing.OrderConfig {
	return pricing.OrderConfig{
		LevelID:       "undergrad",
		ServiceID:     1,
		SubjectID:     1,
		Pages:         1,
		DeadlineHours: 168,
		Addons:        map[string]bool{},
	}
}

// ============ Калькулятор ============

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCatalog(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/catalog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.CatalogResponse](t, w)
	assert.Equal(t, "12", res.BasePricePerPage.String())
	assert.Len(t, res.Services, 8)
	assert.Equal(t, 275, res.WordsPerPage)
	assert.Equal(t, 100, res.MaxPages)
}

func TestQuote(t *testing.T) {
	r, _ := newTestRouter(t)

	cfg := essay()
	cfg.Addons["turnitinAI"] = true

	w := do(r, http.MethodPost, "/api/quote", "", cfg)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, "21.79", res.Price)
	assert.True(t, res.Quote.Resolved)
	assert.Equal(t, 275, res.Words)
	require.Len(t, res.Quote.Addons, 1)
	assert.Equal(t, "turnitinAI", res.Quote.Addons[0].ID)
}

func TestQuoteUnresolvedIsZero(t *testing.T) {
	r, _ := newTestRouter(t)

	cfg := essay()
	cfg.SubjectID = 999

	w := do(r, http.MethodPost, "/api/quote", "", cfg)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, "0.00", res.Price)
	assert.False(t, res.Quote.Resolved)
	assert.Equal(t, []string{"subject"}, res.Quote.Unresolved)
}

func TestQuoteBadJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDefaultQuote(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/quote/defaults", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, "undergrad", res.Config.LevelID)
	assert.Equal(t, 168, res.Config.DeadlineHours)
	assert.Len(t, res.Config.Addons, 6)
	assert.Equal(t, "13.80", res.Price)
}

// ============ Сессия ============

func TestStartSession(t *testing.T) {
	r, store := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/session", "", dto.SessionRequest{Email: "Admin@User.com"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[dto.SessionResponse](t, w)
	assert.Equal(t, "admin", res.Role)

	w = do(r, http.MethodPost, "/api/session", "", dto.SessionRequest{Email: "jane.doe@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[dto.SessionResponse](t, w)
	assert.Equal(t, "client", res.Role)
	assert.Equal(t, "Jane Doe", res.Name)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.InDelta(t, time.Hour.Seconds(), res.ExpiresIn, 5)
	require.NotEmpty(t, res.Token)

	// Выданный токен открывает кабинет клиента
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane.doe@example.com", decode[dto.SessionResponse](t, w).Email)

	users, err := store.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	w = do(r, http.MethodPost, "/api/session", "", dto.SessionRequest{Email: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSession(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/session", "", nil).Code)

	w := do(r, http.MethodGet, "/api/session", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode[dto.SessionResponse](t, w)
	assert.Equal(t, demoEmail, session.Email)
	assert.Empty(t, session.Token)
}

func TestEndSessionWithoutRedis(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodDelete, "/api/session", "", nil).Code)

	w := do(r, http.MethodDelete, "/api/session", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signed out", decode[envelope[any]](t, w).Message)
}

// ============ Заказы ============

func TestPlaceOrderRequiresSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/orders", "", dto.PlaceOrderRequest{OrderConfig: essay()})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlaceOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	cfg := essay()
	cfg.Addons["turnitinAI"] = true
	w := do(r, http.MethodPost, "/api/orders", "new.client@example.com", dto.PlaceOrderRequest{
		OrderConfig:    cfg,
		ProjectDetails: "  Compare two novels.  ",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	res := decode[envelope[dto.OrderResponse]](t, w)
	order := res.Data
	assert.Equal(t, "success", res.Status)
	assert.Regexp(t, `^SPH-\d{5}$`, order.ID)
	assert.Equal(t, ds.StatusAwaitingWriter, order.Status)
	assert.Equal(t, "21.79", order.Price)
	assert.Equal(t, "Essay Writing", order.ServiceName)
	assert.Equal(t, "General", order.SubjectName)
	assert.Equal(t, "New Client", order.UserName)
	assert.Equal(t, "Compare two novels.", order.ProjectDetails)
	assert.True(t, testNow.Add(168*time.Hour).Equal(order.Deadline))
	assert.Equal(t, "7d 0h 0m 0s", order.TimeLeft)

	w = do(r, http.MethodGet, "/api/orders", "new.client@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.OrderListResponse](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, order.ID, list.Orders[0].ID)
}

func TestPlaceOrderRejectsInvalidConfig(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name   string
		mutate func(*pricing.OrderConfig)
	}{
		{"zero pages", func(c *pricing.OrderConfig) { c.Pages = 0 }},
		{"too many pages", func(c *pricing.OrderConfig) { c.Pages = 101 }},
		{"unknown subject", func(c *pricing.OrderConfig) { c.SubjectID = 999 }},
		{"unknown deadline", func(c *pricing.OrderConfig) { c.DeadlineHours = 5 }},
		{"unknown add-on", func(c *pricing.OrderConfig) { c.Addons["ghost"] = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := essay()
			tt.mutate(&cfg)

			w := do(r, http.MethodPost, "/api/orders", demoEmail, dto.PlaceOrderRequest{OrderConfig: cfg})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "fail", decode[dto.ErrorResponse](t, w).Status)
		})
	}
}

func TestGetMyOrders(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/orders", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.OrderListResponse](t, w)
	assert.Equal(t, 4, list.Total)
	for _, o := range list.Orders {
		assert.Equal(t, demoEmail, o.UserEmail)
		assert.Empty(t, o.Messages)
	}

	w = do(r, http.MethodGet, "/api/orders?status=Completed", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[dto.OrderListResponse](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "SPH-82045", list.Orders[0].ID)
	assert.Empty(t, list.Orders[0].TimeLeft)

	w = do(r, http.MethodGet, "/api/orders?status=Lost", demoEmail, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMyOrderHidesForeignOrders(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/orders/SPH-84391", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decode[dto.OrderResponse](t, w)
	assert.Len(t, order.Messages, 5)
	require.NotNil(t, order.Messages[1].Attachment)
	assert.Equal(t, "Outline_SPH-84391.docx", order.Messages[1].Attachment.FileName)

	w = do(r, http.MethodGet, "/api/orders/SPH-84392", demoEmail, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/orders/SPH-84392", adminEmail, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendOrderMessage(t *testing.T) {
	r, store := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/orders/SPH-84112/messages", demoEmail, dto.SendMessageRequest{Text: "Thanks!"})
	require.Equal(t, http.StatusCreated, w.Code)
	msg := decode[envelope[dto.MessageResponse]](t, w).Data
	assert.Equal(t, ds.SenderUser, msg.Sender)
	assert.True(t, testNow.Equal(msg.Timestamp))

	w = do(r, http.MethodPost, "/api/orders/SPH-84112/messages", demoEmail, dto.SendMessageRequest{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/orders/SPH-84393/messages", demoEmail, dto.SendMessageRequest{Text: "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	o, err := store.GetOrder("SPH-84112")
	require.NoError(t, err)
	assert.Len(t, o.Messages, 3)
}

func TestSendOrderAttachmentWithoutMinIO(t *testing.T) {
	r, _ := newTestRouter(t)

	w := upload(t, r, "/api/orders/SPH-84391/attachments", demoEmail, "draft.pdf", 1500, "First draft")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode[envelope[dto.MessageResponse]](t, w).Data
	assert.Equal(t, "First draft", msg.Text)
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "draft.pdf", msg.Attachment.FileName)
	assert.Equal(t, "1.5 kB", msg.Attachment.FileSize)
	assert.Equal(t, "uploaded_draft.pdf", msg.Attachment.FileURL)
}

func TestSendOrderAttachmentRequiresFile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/orders/SPH-84391/attachments", demoEmail, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============ Поддержка ============

func TestSupportChat(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/support/messages", demoEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.MessageResponse](t, w), 3)

	w = do(r, http.MethodPost, "/api/support/messages", demoEmail, dto.SendMessageRequest{Text: "Do you do lab reports?"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/admin/support/demo@user.com/messages", adminEmail, dto.SendMessageRequest{Text: "Yes, we do."})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ds.SenderAdmin, decode[envelope[dto.MessageResponse]](t, w).Data.Sender)

	w = do(r, http.MethodGet, "/api/admin/support/demo@user.com/messages", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	thread := decode[[]dto.MessageResponse](t, w)
	require.Len(t, thread, 5)
	assert.Equal(t, ds.SenderUser, thread[3].Sender)
	assert.Equal(t, ds.SenderAdmin, thread[4].Sender)
}

func TestSupportAttachmentFromClient(t *testing.T) {
	r, store := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, upload(t, r, "/api/support/messages/attachments", "", "essay.docx", 10, "").Code)

	w := upload(t, r, "/api/support/messages/attachments", demoEmail, "essay.docx", 2048, "Can you check this?")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode[envelope[dto.MessageResponse]](t, w).Data
	assert.Equal(t, ds.SenderUser, msg.Sender)
	assert.Equal(t, "Can you check this?", msg.Text)
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "essay.docx", msg.Attachment.FileName)
	assert.Equal(t, "2.0 kB", msg.Attachment.FileSize)
	assert.Equal(t, "uploaded_essay.docx", msg.Attachment.FileURL)

	thread, err := store.ListSupportMessages(demoEmail)
	require.NoError(t, err)
	last := thread[len(thread)-1]
	assert.Equal(t, "essay.docx", last.Attachment.FileName)
	assert.True(t, testNow.Equal(last.Timestamp))

	w = do(r, http.MethodPost, "/api/support/messages/attachments", demoEmail, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupportAttachmentFromAdmin(t *testing.T) {
	r, store := newTestRouter(t)

	// Файл без подписи допустим
	w := upload(t, r, "/api/admin/support/Demo@User.com/attachments", adminEmail, "guide.pdf", 500, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode[envelope[dto.MessageResponse]](t, w).Data
	assert.Equal(t, ds.SenderAdmin, msg.Sender)
	assert.Empty(t, msg.Text)
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "500 B", msg.Attachment.FileSize)

	thread, err := store.ListSupportMessages(demoEmail)
	require.NoError(t, err)
	assert.Equal(t, "guide.pdf", thread[len(thread)-1].Attachment.FileName)

	assert.Equal(t, http.StatusForbidden, upload(t, r, "/api/admin/support/demo@user.com/attachments", demoEmail, "guide.pdf", 10, "").Code)
	assert.Equal(t, http.StatusBadRequest, upload(t, r, "/api/admin/support/not-an-email/attachments", adminEmail, "guide.pdf", 10, "").Code)
}

// ============ Администратор ============

func TestAdminRoutesRequireAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/admin/dashboard", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/admin/dashboard", demoEmail, nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/admin/dashboard", adminEmail, nil).Code)
}

func TestGetDashboard(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/admin/dashboard", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.DashboardResponse](t, w)
	assert.Equal(t, 8, res.TotalOrders)
	assert.Equal(t, 6, res.ActiveOrders)
	assert.Equal(t, 2, res.CompletedOrders)
	assert.Equal(t, "2448.55", res.TotalRevenue.String())
	assert.Len(t, res.ActiveList, 6)
	assert.Len(t, res.CompletedList, 2)
}

func TestGetRevenue(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/admin/revenue", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.RevenueResponse](t, w)
	require.NotEmpty(t, res.ByService)
	assert.Equal(t, "Dissertation", res.ByService[0].Label)
	assert.Equal(t, "Research Paper", res.ByService[1].Label)
	assert.Equal(t, "856.67", res.ByService[1].Revenue.String())
	assert.Equal(t, "Psychology", res.BySubject[0].Label)
}

func TestGetCustomers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/admin/customers", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[dto.CustomerListResponse](t, w)
	require.Equal(t, 5, res.Total)

	demo := res.Customers[0]
	assert.Equal(t, "demo-user", demo.ID)
	assert.Equal(t, demoEmail, demo.Email)
	assert.Equal(t, 4, demo.TotalOrders)
	assert.Equal(t, "968.36", demo.TotalSpent.String())
	assert.Equal(t, "Active", demo.Status)

	assert.Equal(t, "jane-doe", res.Customers[1].ID)
	assert.Equal(t, "900.9", res.Customers[1].TotalSpent.String())
}

func TestAdminOrders(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/admin/orders?query=8439", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[dto.OrderListResponse](t, w).Total)

	w = do(r, http.MethodGet, "/api/admin/orders?customer=jane.doe@example.com", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.OrderListResponse](t, w).Total)

	w = do(r, http.MethodGet, "/api/admin/orders/SPH-00000", adminEmail, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, store := newTestRouter(t)

	w := do(r, http.MethodPut, "/api/admin/orders/SPH-83954/status", adminEmail, dto.UpdateStatusRequest{Status: ds.StatusCompleted})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[envelope[dto.OrderResponse]](t, w).Data.TimeLeft)

	o, err := store.GetOrder("SPH-83954")
	require.NoError(t, err)
	assert.Equal(t, ds.StatusCompleted, o.Status)

	w = do(r, http.MethodPut, "/api/admin/orders/SPH-83954/status", adminEmail, dto.UpdateStatusRequest{Status: "Lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/api/admin/orders/SPH-00000/status", adminEmail, dto.UpdateStatusRequest{Status: ds.StatusCompleted})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOrderMessageAsWriter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/admin/orders/SPH-84393/messages", adminEmail, dto.AdminMessageRequest{Text: "On it.", Sender: ds.SenderWriter})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ds.SenderWriter, decode[envelope[dto.MessageResponse]](t, w).Data.Sender)

	w = do(r, http.MethodPost, "/api/admin/orders/SPH-84393/messages", adminEmail, dto.AdminMessageRequest{Text: "x", Sender: "user"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceLifecycleAffectsQuotes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/admin/services", adminEmail, dto.CreateServiceRequest{
		Name:       "Lab Report",
		Icon:       "🧪",
		Multiplier: decimal.RequireFromString("2"),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[envelope[pricing.Service]](t, w).Data
	assert.Equal(t, uint(9), created.ID)

	cfg := essay()
	cfg.ServiceID = created.ID
	w = do(r, http.MethodPost, "/api/quote", "", cfg)
	assert.Equal(t, "27.60", decode[dto.QuoteResponse](t, w).Price)

	m := decimal.RequireFromString("0.5")
	w = do(r, http.MethodPut, "/api/admin/services/9", adminEmail, dto.UpdateServiceRequest{Multiplier: &m})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/quote", "", cfg)
	assert.Equal(t, "6.90", decode[dto.QuoteResponse](t, w).Price)

	w = do(r, http.MethodDelete, "/api/admin/services/9", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/quote", "", cfg)
	assert.Equal(t, "0.00", decode[dto.QuoteResponse](t, w).Price)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/services/9", "", nil).Code)
}

func TestCreateServiceRejectsBadMultiplier(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/admin/services", adminEmail, dto.CreateServiceRequest{Name: "Free", Multiplier: decimal.Zero})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============ Контент ============

func TestSamples(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/samples?featured=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.SampleResponse](t, w), 6)

	w = do(r, http.MethodPost, "/api/admin/samples", adminEmail, dto.SampleRequest{
		Title: "Climate Policy", Subject: "Sociology", AcademicLevel: "Master", Pages: 12,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[envelope[dto.SampleResponse]](t, w).Data
	assert.Equal(t, "#", created.FileURL)

	w = do(r, http.MethodDelete, "/api/admin/samples/9", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/samples/9", "", nil).Code)

	w = do(r, http.MethodPost, "/api/admin/samples", adminEmail, dto.SampleRequest{Title: "No pages"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticlesHideDrafts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/articles", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.ArticleResponse](t, w)
	require.Len(t, list, 2)
	assert.Empty(t, list[0].Content)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/articles/3", "", nil).Code)

	w = do(r, http.MethodGet, "/api/articles/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[dto.ArticleResponse](t, w).Content)

	w = do(r, http.MethodGet, "/api/admin/articles", adminEmail, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.ArticleResponse](t, w), 3)
}

func TestPublishArticle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPut, "/api/admin/articles/3", adminEmail, dto.ArticleRequest{
		Title:       "Choosing the Right Research Methodology",
		Content:     "Updated.",
		IsPublished: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/articles/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[dto.ArticleResponse](t, w)
	assert.Equal(t, "Updated.", res.Content)
	assert.Equal(t, 2024, res.Date.Year())
}

func TestGetFileWithoutMinIO(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/files/attachments/x.pdf", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
