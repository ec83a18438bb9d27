package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/service"
	"github.com/clorywears/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// fakeOrderRepo — репозиторий заказов в памяти с инъекцией ошибок.
type fakeOrderRepo struct {
	orders map[string]*models.Order
	items  map[string][]*models.OrderItem

	failCreateItems bool
	failSetStatuses bool
}

var _ storage.OrderStorage = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*models.Order),
		items:  make(map[string][]*models.OrderItem),
	}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) CreateOrderItems(ctx context.Context, orderID string, items []*models.OrderItem) error {
	if f.failCreateItems {
		return errors.New("items insert failed")
	}
	f.items[orderID] = items
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id string) error {
	delete(f.orders, id)
	delete(f.items, id)
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, storage.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) GetOrderItems(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		o.Items = f.items[o.ID]
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) SetReceipt(ctx context.Context, id, receiptURL string, status models.PaymentStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return storage.ErrOrderNotFound
	}
	order.ReceiptURL = receiptURL
	order.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) SetStatuses(ctx context.Context, id string, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	if f.failSetStatuses {
		return errors.New("update failed")
	}
	order, ok := f.orders[id]
	if !ok {
		return storage.ErrOrderNotFound
	}
	if paymentStatus != "" {
		order.PaymentStatus = paymentStatus
	}
	if orderStatus != "" {
		order.OrderStatus = orderStatus
	}
	return nil
}

// fakeAdminRepo — allow-list в памяти.
type fakeAdminRepo struct {
	admins map[string]bool
}

var _ storage.AdminStorage = (*fakeAdminRepo)(nil)

func (f *fakeAdminRepo) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.admins[strings.ToLower(email)], nil
}

// fakeReceiptStore записывает, что было загружено.
type fakeReceiptStore struct {
	savedKey         string
	savedContentType string
	err              error
}

func (f *fakeReceiptStore) Save(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.savedKey = objectKey
	f.savedContentType = contentType
	return "https://files.test/receipts/" + objectKey, nil
}

// fakeMailer фиксирует отправленные письма.
type fakeMailer struct {
	subject string
	text    string
	html    string
	sent    int
	err     error
}

func (f *fakeMailer) Send(ctx context.Context, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	f.subject = subject
	f.text = text
	f.html = html
	return nil
}

func validCreateRequest() *service.CreateOrderRequest {
	return &service.CreateOrderRequest{
		Customer: service.OrderCustomer{
			Email:    "Buyer@Example.com",
			FullName: "Ada Obi",
			Phone:    "+2348012345678",
		},
		Shipping: service.OrderShipping{
			State:    "Lagos",
			City:     "Ikeja",
			Address1: "12 Allen Avenue",
		},
		Pricing: service.OrderPricing{
			SubtotalNGN:   37000,
			ShippingNGN:   2500,
			GrandTotalNGN: 39500,
		},
		Items: []service.OrderItemInput{
			{
				ProductID: "trouser-001",
				Name:      "Signature Slim Trouser",
				Category:  "trousers",
				PriceNGN:  18500,
				Quantity:  2,
				Size:      "32",
				Color:     "Wine",
				Image:     "/images/trouser-1.jpg",
			},
		},
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(testLogger(), repo)

	order, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.True(t, strings.HasPrefix(order.Reference, "CLORY-"), "Reference should carry store prefix")
	assert.Equal(t, "buyer@example.com", order.CustomerEmail, "Email should be lowercased")
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, models.OrderCreated, order.OrderStatus)

	// ровно одна строка заказа и одна позиция на каждую присланную
	assert.Len(t, repo.orders, 1)
	assert.Len(t, repo.items[order.ID], 1)
	assert.Equal(t, 2, repo.items[order.ID][0].Quantity)
}

func TestOrderService_Create_SubtotalMismatch(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(testLogger(), repo)

	req := validCreateRequest()
	req.Pricing.SubtotalNGN = 36000

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrSubtotalMismatch)
	assert.Empty(t, repo.orders, "Rejected order must not be persisted")
}

func TestOrderService_Create_TotalMismatch(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(testLogger(), repo)

	// позиция 18500×2, доставка 2500 → итог 39500; клиент заявляет 39000
	req := validCreateRequest()
	req.Pricing.GrandTotalNGN = 39000

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrTotalMismatch)
	assert.Empty(t, repo.orders)
}

func TestOrderService_Create_CompensatingDelete(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.failCreateItems = true
	svc := service.NewOrderService(testLogger(), repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.Error(t, err)
	// либо заказ с позициями, либо ничего: заказ удален компенсирующим DELETE
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.items)
}

func seedOrder(repo *fakeOrderRepo, id string) *models.Order {
	order := &models.Order{
		ID:               id,
		Reference:        "CLORY-20260831-7F2A9C",
		CustomerEmail:    "buyer@example.com",
		CustomerFullName: "Ada Obi",
		CustomerPhone:    "+2348012345678",
		ShippingState:    "Lagos",
		ShippingCity:     "Ikeja",
		ShippingAddress1: "12 Allen Avenue",
		SubtotalNGN:      37000,
		ShippingNGN:      2500,
		GrandTotalNGN:    39500,
		PaymentStatus:    models.PaymentPending,
		OrderStatus:      models.OrderCreated,
	}
	repo.orders[id] = order
	repo.items[id] = []*models.OrderItem{
		{OrderID: id, ProductID: "trouser-001", Name: "Signature Slim Trouser", Category: "trousers", PriceNGN: 18500, Quantity: 2, Size: "32", Color: "Wine"},
	}
	return order
}

func TestReceiptService_Upload_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	store := &fakeReceiptStore{}
	seedOrder(repo, "order-1")

	svc := service.NewReceiptService(testLogger(), repo, store, 6*1024*1024)

	url, err := svc.Upload(context.Background(), "order-1", "proof.jpg", "image/jpeg", 1024, strings.NewReader("fake"))
	assert.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.True(t, strings.HasPrefix(store.savedKey, "order-1/"), "Object key should be namespaced by order id")
	assert.True(t, strings.HasSuffix(store.savedKey, ".jpeg"), "jpg should normalize to jpeg")

	order := repo.orders["order-1"]
	assert.Equal(t, url, order.ReceiptURL)
	assert.Equal(t, models.PaymentReceiptUploaded, order.PaymentStatus)
}

func TestReceiptService_Upload_RejectsBadMime(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "order-1")
	svc := service.NewReceiptService(testLogger(), repo, &fakeReceiptStore{}, 6*1024*1024)

	_, err := svc.Upload(context.Background(), "order-1", "proof.gif", "image/gif", 1024, strings.NewReader("fake"))
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)

	// отказ не меняет заказ
	assert.Equal(t, models.PaymentPending, repo.orders["order-1"].PaymentStatus)
	assert.Empty(t, repo.orders["order-1"].ReceiptURL)
}

func TestReceiptService_Upload_RejectsTooLarge(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "order-1")
	svc := service.NewReceiptService(testLogger(), repo, &fakeReceiptStore{}, 100)

	_, err := svc.Upload(context.Background(), "order-1", "proof.png", "image/png", 101, strings.NewReader("fake"))
	assert.ErrorIs(t, err, service.ErrFileTooLarge)

	_, err = svc.Upload(context.Background(), "order-1", "proof.png", "image/png", 0, strings.NewReader(""))
	assert.ErrorIs(t, err, service.ErrFileTooLarge, "Empty file should be rejected")
}

func TestReceiptService_Upload_RejectsBadExtension(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "order-1")
	svc := service.NewReceiptService(testLogger(), repo, &fakeReceiptStore{}, 6*1024*1024)

	_, err := svc.Upload(context.Background(), "order-1", "proof", "image/png", 1024, strings.NewReader("fake"))
	assert.ErrorIs(t, err, service.ErrInvalidExtension)
}

func TestReceiptService_Upload_OrderNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewReceiptService(testLogger(), repo, &fakeReceiptStore{}, 6*1024*1024)

	_, err := svc.Upload(context.Background(), "missing", "proof.png", "image/png", 1024, strings.NewReader("fake"))
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}

func TestConfirmService_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	mailer := &fakeMailer{}
	order := seedOrder(repo, "order-1")
	order.ReceiptURL = "https://files.test/receipts/order-1/proof.jpeg"
	order.PaymentStatus = models.PaymentReceiptUploaded

	svc := service.NewConfirmService(testLogger(), repo, mailer)

	err := svc.Confirm(context.Background(), "order-1")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentClaimed, order.PaymentStatus)
	assert.Equal(t, models.OrderAwaitingPaymentReview, order.OrderStatus)
	assert.Equal(t, 1, mailer.sent)
	assert.Contains(t, mailer.subject, order.Reference)
	assert.Contains(t, mailer.text, order.ReceiptURL)
}

func TestConfirmService_RequiresReceipt(t *testing.T) {
	repo := newFakeOrderRepo()
	mailer := &fakeMailer{}
	order := seedOrder(repo, "order-1")

	svc := service.NewConfirmService(testLogger(), repo, mailer)

	err := svc.Confirm(context.Background(), "order-1")
	assert.ErrorIs(t, err, service.ErrReceiptRequired)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus, "Order must stay untouched")
	assert.Equal(t, 0, mailer.sent)
}

func TestConfirmService_MailFailureAfterUpdate(t *testing.T) {
	repo := newFakeOrderRepo()
	mailer := &fakeMailer{err: errors.New("provider down")}
	order := seedOrder(repo, "order-1")
	order.ReceiptURL = "https://files.test/receipts/order-1/proof.jpeg"

	svc := service.NewConfirmService(testLogger(), repo, mailer)

	err := svc.Confirm(context.Background(), "order-1")
	assert.Error(t, err)
	// известная неатомарность: БД уже обновлена, хотя письмо не ушло
	assert.Equal(t, models.PaymentClaimed, order.PaymentStatus)
	assert.Equal(t, models.OrderAwaitingPaymentReview, order.OrderStatus)
}

func TestConfirmService_OrderNotFound(t *testing.T) {
	svc := service.NewConfirmService(testLogger(), newFakeOrderRepo(), &fakeMailer{})

	err := svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}

func TestAdminService_Authorize(t *testing.T) {
	repo := newFakeOrderRepo()
	admins := &fakeAdminRepo{admins: map[string]bool{"owner@clorywears.com": true}}
	svc := service.NewAdminService(testLogger(), repo, admins)

	assert.NoError(t, svc.Authorize(context.Background(), "owner@clorywears.com"))
	assert.ErrorIs(t, svc.Authorize(context.Background(), "guest@example.com"), service.ErrNotAdmin)
}

func TestAdminService_Update_NothingToUpdate(t *testing.T) {
	svc := service.NewAdminService(testLogger(), newFakeOrderRepo(), &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "order-1", "", "")
	assert.ErrorIs(t, err, service.ErrNothingToUpdate)
}

func TestAdminService_Update_InvalidStatus(t *testing.T) {
	svc := service.NewAdminService(testLogger(), newFakeOrderRepo(), &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "order-1", "settled", "")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestAdminService_Update_PaidOnCancelledRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, "order-1")
	order.OrderStatus = models.OrderCancelled

	svc := service.NewAdminService(testLogger(), repo, &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "order-1", models.PaymentPaid, "")
	assert.ErrorIs(t, err, service.ErrCancelledPaid)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
}

func TestAdminService_Update_CancelForcesRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, "order-1")

	svc := service.NewAdminService(testLogger(), repo, &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "order-1", "", models.OrderCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.OrderStatus)
	assert.Equal(t, models.PaymentRejected, order.PaymentStatus, "Cancelling a non-paid order forces rejected")
}

func TestAdminService_Update_CancelKeepsExplicitPayment(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, "order-1")

	svc := service.NewAdminService(testLogger(), repo, &fakeAdminRepo{})

	// явный статус оплаты в том же запросе не перетирается на rejected
	err := svc.UpdateStatuses(context.Background(), "order-1", models.PaymentPending, models.OrderCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.OrderStatus)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
}

func TestAdminService_Update_CancelPaidOrderKeepsPaid(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, "order-1")
	order.PaymentStatus = models.PaymentPaid

	svc := service.NewAdminService(testLogger(), repo, &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "order-1", "", models.OrderCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus, "Paid order keeps payment status on cancel")
}

func TestAdminService_Update_OrderNotFound(t *testing.T) {
	svc := service.NewAdminService(testLogger(), newFakeOrderRepo(), &fakeAdminRepo{})

	err := svc.UpdateStatuses(context.Background(), "missing", "", models.OrderShipped)
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}
