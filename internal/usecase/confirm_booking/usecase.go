package confirm_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// Значение-заглушка несделанного выбора способа оплаты
const placeholderPaymentMethod = "Select Payment Method"

// UseCase use case подтверждения оплаты и создания билета
// Единственное место в системе, где хранилище изменяется.
type UseCase struct {
	store        TicketStore
	catalog      Catalog
	vipName      string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// vipName имя пассажира (без учета регистра), для которого цена
// принудительно равна нулю; пустая строка отключает переопределение.
func NewUseCase(store TicketStore, catalog Catalog, vipName string, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		vipName:      vipName,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает билет и добавляет его в хранилище
// Все проверки выполняются до добавления: при любой ошибке хранилище
// остается нетронутым.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем способ оплаты
	if err := validatePaymentMethod(req.PaymentMethod); err != nil {
		uc.logger.Warn("ConfirmBooking: %v", err)
		return nil, err
	}

	// 2. Цена: каталог либо VIP-переопределение
	price, ok := uc.catalog.Price(req.Destination)
	if !ok {
		uc.logger.Error("ConfirmBooking: destination %q is not in the catalog", req.Destination)
		return nil, ErrUnknownDestination
	}

	vip := uc.vipName != "" && strings.EqualFold(req.Name, uc.vipName)
	message := msgRegular
	if vip {
		price = 0
		message = msgVIPOverride
	}

	// 3. Порядковый номер и идентификатор
	// Билеты не удаляются, поэтому размер хранилища монотонно растет и
	// идентификаторы не повторяются.
	sequence := uc.store.Count(ctx) + 1
	id := domain.FormatTicketID(sequence)

	// 4. Момент создания фиксируется здесь, с точностью до секунды
	ticket := &domain.Ticket{
		ID:            id,
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		Source:        req.Source,
		Destination:   req.Destination,
		Price:         price,
		PaymentMethod: req.PaymentMethod,
		BookedAt:      uc.timeProvider.Now().Truncate(time.Second),
	}

	// 5. Добавляем в хранилище
	if err := uc.store.Append(ctx, ticket); err != nil {
		uc.logger.Error("ConfirmBooking: failed to append ticket %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to append ticket: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: created %s, passenger=%s, %s -> %s, price=%d, vip=%t",
		id, ticket.Name, ticket.Source, ticket.Destination, ticket.Price, vip)

	return &Response{
		Ticket:  ticket,
		VIP:     vip,
		Message: message,
	}, nil
}

// validatePaymentMethod проверяет, что способ оплаты выбран и поддерживается
func validatePaymentMethod(method string) error {
	m := strings.TrimSpace(method)
	if m == "" || m == placeholderPaymentMethod {
		return ErrMissingPaymentMethod
	}
	if !domain.IsValidPaymentMethod(m) {
		return fmt.Errorf("%w: unsupported method %q", ErrMissingPaymentMethod, method)
	}
	return nil
}
