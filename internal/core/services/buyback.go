// internal/core/services/buyback.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// BuybackOptions tunes the application service
type BuybackOptions struct {
	// OfferExpiration is added to the creation time of offers built from
	// selected audit items.
	OfferExpiration time.Duration
}

// DefaultOfferExpiration applies when no expiration is configured
const DefaultOfferExpiration = 14 * 24 * time.Hour

// BuybackService runs the buyback workflow operations. Each write goes
// through the same pipeline: mutate, cascade, flush, recompute aggregates,
// commit, then enqueue post-commit tasks.
type BuybackService struct {
	sessions   ports.SessionFactory
	engine     *CascadeEngine
	aggregates *AggregateRecomputer
	tasks      ports.TaskEnqueuer
	archive    ports.OfferArchive
	guard      ConsistencyGuard
	options    BuybackOptions
	now        func() time.Time
	logger     *slog.Logger
}

// Statically assert that *BuybackService implements the BuybackService interface.
var _ ports.BuybackService = (*BuybackService)(nil)

// NewBuybackService creates a new buyback service
func NewBuybackService(
	sessions ports.SessionFactory,
	engine *CascadeEngine,
	aggregates *AggregateRecomputer,
	tasks ports.TaskEnqueuer,
	archive ports.OfferArchive,
	options BuybackOptions,
	logger *slog.Logger,
) *BuybackService {
	if options.OfferExpiration <= 0 {
		options.OfferExpiration = DefaultOfferExpiration
	}
	return &BuybackService{
		sessions:   sessions,
		engine:     engine,
		aggregates: aggregates,
		tasks:      tasks,
		archive:    archive,
		options:    options,
		now:        time.Now,
		logger:     logger.With(slog.String("service", "buyback")),
	}
}

// commit runs mutate and the cascade in one transaction. Queued recomputes
// live only as long as this call, so a rollback discards them too.
func (s *BuybackService) commit(ctx context.Context, mutate func(ctx context.Context, sess ports.Session) error) error {
	queue := NewRecomputeQueue()

	err := s.sessions.WithSession(ctx, func(ctx context.Context, sess ports.Session) error {
		if err := mutate(ctx, sess); err != nil {
			return err
		}
		if err := s.engine.BeforeCommit(ctx, sess, queue); err != nil {
			return err
		}
		if err := sess.Flush(ctx); err != nil {
			return fmt.Errorf("failed to flush session: %w", err)
		}
		return s.aggregates.Run(ctx, sess.Aggregates(), queue)
	})
	if err != nil {
		return err
	}

	s.afterCommit(ctx, queue)
	return nil
}

func (s *BuybackService) afterCommit(ctx context.Context, queue *RecomputeQueue) {
	if s.tasks == nil {
		return
	}
	for _, id := range queue.ValidatedOfferIDs() {
		if err := s.tasks.EnqueueOfferValidated(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "failed to enqueue offer validation",
				slog.String("buyback_offer_id", id.String()),
				slog.String("error", err.Error()))
		}
	}
}

// read runs fn in a transaction that writes nothing
func (s *BuybackService) read(ctx context.Context, fn func(ctx context.Context, sess ports.Session) error) error {
	return s.sessions.WithSession(ctx, fn)
}

// Audit requests

// CreateAuditRequest creates an audit request with its product lines
func (s *BuybackService) CreateAuditRequest(ctx context.Context, in ports.AuditRequestInput) (*domain.AuditRequest, error) {
	request := &domain.AuditRequest{
		AccountID:           in.AccountID,
		SupplierID:          in.SupplierID,
		ShippingAddressID:   in.ShippingAddressID,
		InvoiceAddressID:    in.InvoiceAddressID,
		WorkcenterID:        in.WorkcenterID,
		ContactID:           in.ContactID,
		IdentifierType:      in.IdentifierType,
		SupplierOrderNumber: in.SupplierOrderNumber,
		CustomerReference:   in.CustomerReference,
		Status:              in.Status,
		Comment:             in.Comment,
		Date:                in.Date,
		Items:               []*domain.AuditRequestItem{},
	}
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	request.PrepareForStorage()

	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		if in.BuybackOfferID != nil {
			offer, err := sess.FindBuybackOffer(ctx, *in.BuybackOfferID)
			if err != nil {
				return fmt.Errorf("failed to load buyback offer: %w", err)
			}
			request.BuybackOffer = offer
		}
		sess.Persist(request)

		for _, line := range in.Items {
			if _, err := addRequestItem(sess, request, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "audit request created",
		slog.String("audit_request_id", request.ID.String()),
		slog.Int("items", len(in.Items)))

	return s.GetAuditRequest(ctx, request.ID)
}

// GetAuditRequest retrieves an audit request with its product lines
func (s *BuybackService) GetAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error) {
	var request *domain.AuditRequest
	err := s.read(ctx, func(ctx context.Context, sess ports.Session) error {
		var err error
		request, err = sess.FindAuditRequest(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get audit request: %w", err)
	}
	return request, nil
}

// UpdateAuditRequest applies a patch to an audit request
func (s *BuybackService) UpdateAuditRequest(ctx context.Context, id uuid.UUID, patch ports.AuditRequestPatch) (*domain.AuditRequest, error) {
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		request, err := sess.FindAuditRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit request: %w", err)
		}

		patch.Status.Apply(&request.Status)
		patch.ReceiptedAt.Apply(&request.ReceiptedAt)
		patch.ShippingAddressID.Apply(&request.ShippingAddressID)
		patch.InvoiceAddressID.Apply(&request.InvoiceAddressID)
		patch.ContactID.Apply(&request.ContactID)
		patch.SupplierOrderNumber.Apply(&request.SupplierOrderNumber)
		patch.CustomerReference.Apply(&request.CustomerReference)
		patch.Comment.Apply(&request.Comment)

		if patch.BuybackOfferID.Set {
			request.BuybackOffer = nil
			if patch.BuybackOfferID.Value != nil {
				offer, err := sess.FindBuybackOffer(ctx, *patch.BuybackOfferID.Value)
				if err != nil {
					return fmt.Errorf("failed to load buyback offer: %w", err)
				}
				request.BuybackOffer = offer
			}
		}

		return request.Validate()
	})
	if err != nil {
		return nil, err
	}

	return s.GetAuditRequest(ctx, id)
}

// ConvertAuditRequest materializes one audit item per received unit. A
// request is converted at most once.
func (s *BuybackService) ConvertAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error) {
	created := 0
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		request, err := sess.FindAuditRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit request: %w", err)
		}
		if request.Converted {
			return nil
		}

		request.Converted = true
		items := request.MaterializeAuditItems(s.now())
		for _, item := range items {
			sess.Persist(item)
		}
		created = len(items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "audit request converted",
		slog.String("audit_request_id", id.String()),
		slog.Int("audit_items", created))

	return s.GetAuditRequest(ctx, id)
}

// Audit request items

func addRequestItem(sess ports.Session, request *domain.AuditRequest, in ports.AuditRequestItemInput) (*domain.AuditRequestItem, error) {
	item := &domain.AuditRequestItem{
		AuditRequest:         request,
		ProductID:            in.ProductID,
		ProductCombinationID: in.ProductCombinationID,
		ExpectedQuantity:     in.ExpectedQuantity,
		ReceivedQuantity:     in.ReceivedQuantity,
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	item.PrepareForStorage()

	sess.Persist(item)
	request.Items = append(request.Items, item)
	return item, nil
}

// AddAuditRequestItem adds a product line to an audit request
func (s *BuybackService) AddAuditRequestItem(ctx context.Context, requestID uuid.UUID, in ports.AuditRequestItemInput) (*domain.AuditRequestItem, error) {
	var item *domain.AuditRequestItem
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		request, err := sess.FindAuditRequest(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to load audit request: %w", err)
		}
		item, err = addRequestItem(sess, request, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateAuditRequestItem changes the quantities of a product line
func (s *BuybackService) UpdateAuditRequestItem(ctx context.Context, id uuid.UUID, patch ports.AuditRequestItemPatch) (*domain.AuditRequestItem, error) {
	var item *domain.AuditRequestItem
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		var err error
		item, err = sess.FindAuditRequestItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit request item: %w", err)
		}
		patch.ExpectedQuantity.Apply(&item.ExpectedQuantity)
		patch.ReceivedQuantity.Apply(&item.ReceivedQuantity)
		return item.Validate()
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteAuditRequestItem removes a product line
func (s *BuybackService) DeleteAuditRequestItem(ctx context.Context, id uuid.UUID) error {
	return s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		item, err := sess.FindAuditRequestItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit request item: %w", err)
		}
		if request := item.AuditRequest; request != nil {
			kept := request.Items[:0]
			for _, line := range request.Items {
				if line != item {
					kept = append(kept, line)
				}
			}
			request.Items = kept
		}
		sess.Remove(item)
		return nil
	})
}

// Audit items

// CreateAuditItem creates an audit item inside an audit request
func (s *BuybackService) CreateAuditItem(ctx context.Context, in ports.AuditItemInput) (*domain.AuditItem, error) {
	item := &domain.AuditItem{
		ProductID:            in.ProductID,
		ProductCombinationID: in.ProductCombinationID,
		AuditConditionID:     in.AuditConditionID,
		Comment:              in.Comment,
	}
	if in.StatePrice != nil {
		item.StatePrice = *in.StatePrice
	}
	if in.ConditionPrice != nil {
		item.ConditionPrice = *in.ConditionPrice
	}
	item.PrepareForStorage()

	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		if in.AuditRequestID != uuid.Nil {
			request, err := sess.FindAuditRequest(ctx, in.AuditRequestID)
			if err != nil {
				return fmt.Errorf("failed to load audit request: %w", err)
			}
			item.AuditRequest = request
		}
		if err := s.linkDevice(ctx, sess, item, in.DeviceID); err != nil {
			return err
		}
		if err := s.linkOffer(ctx, sess, item, in.BuybackOfferID); err != nil {
			return err
		}
		sess.Persist(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "audit item created",
		slog.String("audit_item_id", item.ID.String()))

	return s.GetAuditItem(ctx, item.ID)
}

// GetAuditItem retrieves an audit item
func (s *BuybackService) GetAuditItem(ctx context.Context, id uuid.UUID) (*domain.AuditItem, error) {
	var item *domain.AuditItem
	err := s.read(ctx, func(ctx context.Context, sess ports.Session) error {
		var err error
		item, err = sess.FindAuditItem(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get audit item: %w", err)
	}
	return item, nil
}

// UpdateAuditItem applies a patch to an audit item
func (s *BuybackService) UpdateAuditItem(ctx context.Context, id uuid.UUID, patch ports.AuditItemPatch) (*domain.AuditItem, error) {
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		item, err := sess.FindAuditItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit item: %w", err)
		}

		patch.ProductID.Apply(&item.ProductID)
		patch.ProductCombinationID.Apply(&item.ProductCombinationID)
		patch.AuditConditionID.Apply(&item.AuditConditionID)
		patch.Comment.Apply(&item.Comment)
		applyDecimal(patch.StatePrice, &item.StatePrice)
		applyDecimal(patch.ConditionPrice, &item.ConditionPrice)
		applyDecimal(patch.RepairPrice, &item.RepairPrice)
		if patch.IncludedRepairPrice.Set && patch.IncludedRepairPrice.Value != nil {
			item.IncludedRepairPrice = *patch.IncludedRepairPrice.Value
		}

		if patch.DeviceID.Set {
			if err := s.linkDevice(ctx, sess, item, patch.DeviceID.Value); err != nil {
				return err
			}
		}
		if patch.BuybackOfferID.Set {
			if err := s.linkOffer(ctx, sess, item, patch.BuybackOfferID.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetAuditItem(ctx, id)
}

// DeleteAuditItem removes an audit item
func (s *BuybackService) DeleteAuditItem(ctx context.Context, id uuid.UUID) error {
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		item, err := sess.FindAuditItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load audit item: %w", err)
		}
		sess.Remove(item)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "audit item deleted", slog.String("audit_item_id", id.String()))
	return nil
}

func (s *BuybackService) linkDevice(ctx context.Context, sess ports.Session, item *domain.AuditItem, deviceID *uuid.UUID) error {
	if deviceID == nil {
		item.Device = nil
		return nil
	}
	device, err := sess.FindDevice(ctx, *deviceID)
	if err != nil {
		return fmt.Errorf("failed to load device: %w", err)
	}
	item.Device = device
	return nil
}

func (s *BuybackService) linkOffer(ctx context.Context, sess ports.Session, item *domain.AuditItem, offerID *uuid.UUID) error {
	if offerID == nil {
		item.BuybackOffer = nil
		return nil
	}
	offer, err := sess.FindBuybackOffer(ctx, *offerID)
	if err != nil {
		return fmt.Errorf("failed to load buyback offer: %w", err)
	}
	item.BuybackOffer = offer
	return nil
}

func applyDecimal(o ports.Optional[decimal.Decimal], dst *decimal.Decimal) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = decimal.Zero
		return
	}
	*dst = *o.Value
}

// Buyback offers

// CreateBuybackOffer creates an empty buyback offer
func (s *BuybackService) CreateBuybackOffer(ctx context.Context, in ports.BuybackOfferInput) (*domain.BuybackOffer, error) {
	offer := &domain.BuybackOffer{
		AccountID:           in.AccountID,
		SupplierID:          in.SupplierID,
		ShippingAddressID:   in.ShippingAddressID,
		InvoiceAddressID:    in.InvoiceAddressID,
		ContactID:           in.ContactID,
		Status:              in.Status,
		CalculationMethod:   in.CalculationMethod,
		SupplierOrderNumber: in.SupplierOrderNumber,
		ExpirationDate:      in.ExpirationDate,
		Comment:             in.Comment,
	}
	if err := offer.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	offer.PrepareForStorage()

	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		sess.Persist(offer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "buyback offer created",
		slog.String("buyback_offer_id", offer.ID.String()))

	return s.GetBuybackOffer(ctx, offer.ID)
}

// GetBuybackOffer retrieves a buyback offer
func (s *BuybackService) GetBuybackOffer(ctx context.Context, id uuid.UUID) (*domain.BuybackOffer, error) {
	var offer *domain.BuybackOffer
	err := s.read(ctx, func(ctx context.Context, sess ports.Session) error {
		var err error
		offer, err = sess.FindBuybackOffer(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get buyback offer: %w", err)
	}
	return offer, nil
}

// UpdateBuybackOffer applies a patch to a buyback offer
func (s *BuybackService) UpdateBuybackOffer(ctx context.Context, id uuid.UUID, patch ports.BuybackOfferPatch) (*domain.BuybackOffer, error) {
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		offer, err := sess.FindBuybackOffer(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load buyback offer: %w", err)
		}

		patch.Status.Apply(&offer.Status)
		patch.CalculationMethod.Apply(&offer.CalculationMethod)
		patch.ExpirationDate.Apply(&offer.ExpirationDate)
		patch.ShippingAddressID.Apply(&offer.ShippingAddressID)
		patch.Comment.Apply(&offer.Comment)

		return offer.Validate()
	})
	if err != nil {
		return nil, err
	}

	return s.GetBuybackOffer(ctx, id)
}

// AddAuditItemsToOffer attaches the selected audited items of an account to
// an offer. Without offerID a new offer is built from the first item's
// request.
func (s *BuybackService) AddAuditItemsToOffer(ctx context.Context, accountID uuid.UUID, offerID *uuid.UUID, selection ports.OfferSelection) (*domain.BuybackOffer, error) {
	var offer *domain.BuybackOffer
	attached := 0

	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		items, err := sess.FindAuditItems(ctx, auditSelection(ports.OfferScope{AccountID: &accountID}, selection))
		if err != nil {
			return fmt.Errorf("failed to select audit items: %w", err)
		}
		if len(items) == 0 {
			return domain.NewValidationError(domain.ErrKindNoAuditSelected, nil, "")
		}

		if offerID != nil {
			offer, err = sess.FindBuybackOffer(ctx, *offerID)
			if err != nil {
				return fmt.Errorf("failed to load buyback offer: %w", err)
			}
		} else {
			offer = s.offerFromItem(accountID, items[0])
			sess.Persist(offer)
		}

		for _, item := range items {
			item.BuybackOffer = offer
		}
		attached = len(items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "audit items added to buyback offer",
		slog.String("buyback_offer_id", offer.ID.String()),
		slog.Int("count", attached))

	return s.GetBuybackOffer(ctx, offer.ID)
}

func (s *BuybackService) offerFromItem(accountID uuid.UUID, item *domain.AuditItem) *domain.BuybackOffer {
	expiration := s.now().Add(s.options.OfferExpiration)
	offer := &domain.BuybackOffer{
		AccountID:      accountID,
		ExpirationDate: &expiration,
	}
	if request := item.AuditRequest; request != nil {
		offer.ShippingAddressID = copyID(request.ShippingAddressID)
		offer.InvoiceAddressID = copyID(request.InvoiceAddressID)
		offer.SupplierID = copyID(request.SupplierID)
		offer.ContactID = copyID(request.ContactID)
		fillString(&offer.SupplierOrderNumber, request.SupplierOrderNumber)
	}
	offer.PrepareForStorage()
	return offer
}

// ApplyPriceRule prices the selected valorised items of an offer from their
// audit condition.
func (s *BuybackService) ApplyPriceRule(ctx context.Context, offerID uuid.UUID, selection ports.OfferSelection, rule domain.PriceRule) (*domain.BuybackOffer, error) {
	priced := 0
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		if _, err := sess.FindBuybackOffer(ctx, offerID); err != nil {
			return fmt.Errorf("failed to load buyback offer: %w", err)
		}
		items, err := sess.FindAuditItems(ctx, auditSelection(ports.OfferScope{OfferID: &offerID}, selection))
		if err != nil {
			return fmt.Errorf("failed to load offer items: %w", err)
		}
		if len(items) == 0 {
			return domain.NewValidationError(domain.ErrKindNoAuditSelected, nil, "")
		}

		conditions := make(map[uuid.UUID]*domain.AuditCondition)
		for _, item := range items {
			condition, err := findCondition(ctx, sess, conditions, *item.AuditConditionID)
			if err != nil {
				return err
			}
			if rule.Apply(item, condition) {
				priced++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "price rule applied",
		slog.String("buyback_offer_id", offerID.String()),
		slog.Int("priced", priced))

	return s.GetBuybackOffer(ctx, offerID)
}

func findCondition(ctx context.Context, sess ports.Session, loaded map[uuid.UUID]*domain.AuditCondition, id uuid.UUID) (*domain.AuditCondition, error) {
	if condition, ok := loaded[id]; ok {
		return condition, nil
	}
	condition, err := sess.FindAuditCondition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit condition: %w", err)
	}
	loaded[id] = condition
	return condition, nil
}

// Selectable audit items

// scopeFilter restricts items to a scope: the valorised items of an offer,
// or the audited, offer-less items of an account whose request carries a
// supplier order number.
func scopeFilter(scope ports.OfferScope) ports.AuditItemFilter {
	if scope.OfferID != nil {
		return ports.AuditItemFilter{
			BuybackOfferID: scope.OfferID,
			Status:         domain.AuditItemValorised,
		}
	}
	return ports.AuditItemFilter{
		AccountID:         scope.AccountID,
		Status:            domain.AuditItemAudited,
		WithoutOffer:      true,
		WithSupplierOrder: true,
	}
}

// auditSelection is the full item selection used to attach or price items
func auditSelection(scope ports.OfferScope, selection ports.OfferSelection) ports.AuditItemFilter {
	filter := scopeFilter(scope)
	filter.WithCondition = true
	filter.WithSupplierOrder = true
	filter.Products = selection.Products
	filter.ConditionIDs = selection.ConditionIDs
	filter.SupplierOrders = selection.SupplierOrders
	filter.AuditItemIDs = selection.AuditItemIDs
	filter.Repairs = selection.Repairs
	return filter
}

func validScope(scope ports.OfferScope) error {
	if scope.OfferID == nil && scope.AccountID == nil {
		return domain.InvalidField("scope", "an account or a buyback offer is required")
	}
	return nil
}

func (s *BuybackService) selectableItems(ctx context.Context, scope ports.OfferScope, filter ports.AuditItemFilter, fn func(ctx context.Context, sess ports.Session, items []*domain.AuditItem) error) error {
	if err := validScope(scope); err != nil {
		return err
	}
	return s.read(ctx, func(ctx context.Context, sess ports.Session) error {
		if scope.OfferID != nil {
			if _, err := sess.FindBuybackOffer(ctx, *scope.OfferID); err != nil {
				return fmt.Errorf("failed to load buyback offer: %w", err)
			}
		}
		items, err := sess.FindAuditItems(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to select audit items: %w", err)
		}
		return fn(ctx, sess, items)
	})
}

// AvailableProducts lists the distinct products of the selectable items
func (s *BuybackService) AvailableProducts(ctx context.Context, scope ports.OfferScope) ([]ports.AvailableProduct, error) {
	var products []ports.AvailableProduct
	err := s.selectableItems(ctx, scope, scopeFilter(scope), func(_ context.Context, _ ports.Session, items []*domain.AuditItem) error {
		seen := make(map[string]bool)
		for _, item := range items {
			if item.ProductID == nil {
				continue
			}
			product := ports.AvailableProduct{
				ID:                   item.ProductID.String(),
				ProductID:            *item.ProductID,
				ProductCombinationID: copyID(item.ProductCombinationID),
			}
			if product.ProductCombinationID != nil {
				product.ID += "@" + product.ProductCombinationID.String()
			}
			if !seen[product.ID] {
				seen[product.ID] = true
				products = append(products, product)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// AvailableConditions lists the audit conditions of the selectable items,
// narrowed by the selected products.
func (s *BuybackService) AvailableConditions(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) ([]*domain.AuditCondition, error) {
	filter := scopeFilter(scope)
	filter.WithCondition = true
	filter.Products = selection.Products

	var conditions []*domain.AuditCondition
	err := s.selectableItems(ctx, scope, filter, func(ctx context.Context, sess ports.Session, items []*domain.AuditItem) error {
		loaded := make(map[uuid.UUID]*domain.AuditCondition)
		for _, item := range items {
			if _, ok := loaded[*item.AuditConditionID]; ok {
				continue
			}
			condition, err := findCondition(ctx, sess, loaded, *item.AuditConditionID)
			if err != nil {
				return err
			}
			conditions = append(conditions, condition)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(conditions, func(i, j int) bool { return conditions[i].Name < conditions[j].Name })
	return conditions, nil
}

// AvailableSupplierOrderNumbers lists the supplier order numbers of the
// selectable items, narrowed by the selected products and conditions.
func (s *BuybackService) AvailableSupplierOrderNumbers(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) ([]string, error) {
	filter := scopeFilter(scope)
	filter.WithCondition = true
	filter.WithSupplierOrder = true
	filter.Products = selection.Products
	filter.ConditionIDs = selection.ConditionIDs

	var numbers []string
	err := s.selectableItems(ctx, scope, filter, func(_ context.Context, _ ports.Session, items []*domain.AuditItem) error {
		for _, item := range items {
			number := *item.AuditRequest.SupplierOrderNumber
			if !slices.Contains(numbers, number) {
				numbers = append(numbers, number)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(numbers)
	return numbers, nil
}

// AvailableAudits lists the items a selection would attach or price
func (s *BuybackService) AvailableAudits(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) ([]*domain.AuditItem, error) {
	var audits []*domain.AuditItem
	err := s.selectableItems(ctx, scope, auditSelection(scope, selection), func(_ context.Context, _ ports.Session, items []*domain.AuditItem) error {
		audits = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return audits, nil
}

// ArchiveOffer stores a snapshot of a validated offer and returns its key.
// Offers that are no longer validated are skipped.
func (s *BuybackService) ArchiveOffer(ctx context.Context, offerID uuid.UUID) (string, error) {
	var snapshot *domain.OfferSnapshot
	err := s.read(ctx, func(ctx context.Context, sess ports.Session) error {
		offer, err := sess.FindBuybackOffer(ctx, offerID)
		if err != nil {
			return fmt.Errorf("failed to load buyback offer: %w", err)
		}
		if !offer.Validated {
			return nil
		}
		items, err := sess.FindAuditItems(ctx, ports.AuditItemFilter{BuybackOfferID: &offerID})
		if err != nil {
			return fmt.Errorf("failed to load offer items: %w", err)
		}
		snapshot = domain.NewOfferSnapshot(offer, items, s.now())
		return nil
	})
	if err != nil {
		return "", err
	}
	if snapshot == nil {
		s.logger.InfoContext(ctx, "offer not validated, archive skipped",
			slog.String("buyback_offer_id", offerID.String()))
		return "", nil
	}

	key, err := s.archive.StoreOffer(ctx, snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to archive buyback offer: %w", err)
	}

	s.logger.InfoContext(ctx, "buyback offer archived",
		slog.String("buyback_offer_id", offerID.String()),
		slog.String("key", key))

	return key, nil
}

// Repairs

// TransferToRepair hands an audit item off to the repair workflow. An item
// already in repair returns its existing repair.
func (s *BuybackService) TransferToRepair(ctx context.Context, auditItemID uuid.UUID, in ports.RepairTransferInput) (*domain.Repair, error) {
	var repair *domain.Repair
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		item, err := sess.FindAuditItem(ctx, auditItemID)
		if err != nil {
			return fmt.Errorf("failed to load audit item: %w", err)
		}
		if err := s.guard.RepairTransfer(item); err != nil {
			return err
		}
		if item.Repair != nil {
			repair = item.Repair
			return nil
		}

		repair = &domain.Repair{
			ProductID:            copyID(item.ProductID),
			ProductCombinationID: copyID(item.ProductCombinationID),
			RepairerID:           in.RepairerID,
			ContactID:            in.ContactID,
			WorkcenterID:         in.WorkcenterID,
			InvoiceAddressID:     in.InvoiceAddressID,
			ShippingAddressID:    in.ShippingAddressID,
			Device:               item.Device,
			Status:               domain.RepairStatusReceived,
		}
		fillID(&repair.RepairerID, item.AuditorID)
		if request := item.AuditRequest; request != nil {
			repair.AccountID = request.AccountID
			fillID(&repair.ContactID, request.ContactID)
			fillID(&repair.WorkcenterID, request.WorkcenterID)
			fillID(&repair.InvoiceAddressID, request.InvoiceAddressID)
			fillID(&repair.ShippingAddressID, request.ShippingAddressID)
		}
		repair.PrepareForStorage()

		domain.AttachRepair(item, repair)
		sess.Persist(repair)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "audit item transferred to repair",
		slog.String("audit_item_id", auditItemID.String()),
		slog.String("repair_id", repair.ID.String()))

	return repair, nil
}

// DeleteRepair removes a repair and releases its audit item
func (s *BuybackService) DeleteRepair(ctx context.Context, id uuid.UUID) error {
	return s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		repair, err := sess.FindRepair(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load repair: %w", err)
		}
		sess.Remove(repair)
		return nil
	})
}

// SyncRepairPrices copies repair prices onto the linked audit items as a
// deduction. It returns the number of items changed.
func (s *BuybackService) SyncRepairPrices(ctx context.Context, prices []ports.RepairPrice) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	byRepair := make(map[uuid.UUID]decimal.Decimal, len(prices))
	ids := make([]uuid.UUID, 0, len(prices))
	for _, p := range prices {
		if _, ok := byRepair[p.RepairID]; !ok {
			ids = append(ids, p.RepairID)
		}
		byRepair[p.RepairID] = p.Price
	}

	changed := 0
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		items, err := sess.FindAuditItemsByRepairs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load repaired audit items: %w", err)
		}
		for _, item := range items {
			if item.Repair == nil {
				continue
			}
			price, ok := byRepair[item.Repair.ID]
			if !ok {
				continue
			}
			if !item.Repair.Price.Equal(price) {
				item.Repair.Price = price
			}
			deduction := price.Neg()
			if !item.RepairPrice.Equal(deduction) {
				item.RepairPrice = deduction
				changed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "repair prices synchronized",
		slog.Int("repairs", len(ids)),
		slog.Int("audit_items", changed))

	return changed, nil
}

// Devices

// UpdateDevice applies a patch to the audit fields of a device
func (s *BuybackService) UpdateDevice(ctx context.Context, id uuid.UUID, patch ports.DevicePatch) (*domain.Device, error) {
	var device *domain.Device
	err := s.commit(ctx, func(ctx context.Context, sess ports.Session) error {
		var err error
		device, err = sess.FindDevice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load device: %w", err)
		}
		patch.ProductID.Apply(&device.ProductID)
		patch.ProductCombinationID.Apply(&device.ProductCombinationID)
		patch.AuditConditionID.Apply(&device.AuditConditionID)
		patch.TerminatedAt.Apply(&device.TerminatedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return device, nil
}

// ReconcileAggregates recomputes the given requests and offers from their
// current children.
func (s *BuybackService) ReconcileAggregates(ctx context.Context, requestIDs, offerIDs []uuid.UUID) error {
	queue := NewRecomputeQueue()
	for _, id := range requestIDs {
		queue.AuditRequest(id)
	}
	for _, id := range offerIDs {
		queue.BuybackOffer(id)
	}
	if queue.Empty() {
		return nil
	}

	err := s.sessions.WithSession(ctx, func(ctx context.Context, sess ports.Session) error {
		return s.aggregates.Run(ctx, sess.Aggregates(), queue)
	})
	if err != nil {
		return fmt.Errorf("failed to reconcile aggregates: %w", err)
	}

	s.logger.InfoContext(ctx, "aggregates reconciled",
		slog.Int("audit_requests", len(queue.RequestIDs())),
		slog.Int("buyback_offers", len(queue.OfferIDs())))

	return nil
}
