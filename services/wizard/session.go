// File: wizard/session_service.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// sessionKeyPrefix is the fixed store name under which selections are
// persisted; one key per wizard session.
const sessionKeyPrefix = "booking-wizard:"

// ErrSessionNotFound is returned when a session id does not resolve to a
// live (non-expired) session.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// SessionSeed pre-seeds a fresh session from deep-link parameters. The ids
// are applied through the regular selection operations before the user
// interacts with anything; unknown ids are carried and later priced as zero.
type SessionSeed struct {
	PackageID  string   `json:"packageId,omitempty"`
	HotelID    string   `json:"hotelId,omitempty"`
	TransferID string   `json:"transferId,omitempty"`
	TourIDs    []string `json:"tourIds,omitempty"`
}

// SessionService manages persisted wizard sessions: one BookingSelection per
// session id, mutated through selection operations and repriced on every save.
type SessionService interface {
	Create(ctx context.Context, seed SessionSeed) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Summary(ctx context.Context, sessionID string) (*models.SelectionSummary, error)

	SelectPackage(ctx context.Context, sessionID, packageID string) (*models.WizardSession, error)
	SelectHotel(ctx context.Context, sessionID, hotelID string) (*models.WizardSession, error)
	SelectTransfer(ctx context.Context, sessionID, transferID string) (*models.WizardSession, error)
	AddTour(ctx context.Context, sessionID, tourID string) (*models.WizardSession, error)
	RemoveTour(ctx context.Context, sessionID, tourID string) (*models.WizardSession, error)
	SetTravelerDetails(ctx context.Context, sessionID string, details models.TravelerDetails) (*models.WizardSession, error)
	PatchTravelerDetails(ctx context.Context, sessionID string, patch models.TravelerDetailsPatch) (*models.WizardSession, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error)
	SetInvoiceDetails(ctx context.Context, sessionID string, details models.InvoiceDetails) (*models.WizardSession, error)

	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardSession, error)

	// MarkConfirmed moves a submitted session to the terminal Confirmation
	// step; Clear removes the session entirely.
	MarkConfirmed(ctx context.Context, sessionID string) error
	Clear(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService over Redis.
type DefaultSessionService struct {
	Catalog     catalogRepo.CatalogRepository
	CacheClient *redis.Client
	TTL         time.Duration
	Currency    string
	Logger      *zap.Logger
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Create builds a fresh session, applies any deep-link seed, prices it, and
// persists it under a new session id.
func (s *DefaultSessionService) Create(ctx context.Context, seed SessionSeed) (*models.WizardSession, error) {
	sessionID := uuid.New().String()
	store := NewStore()
	if seed.PackageID != "" {
		store.SetPackage(seed.PackageID)
	}
	if seed.HotelID != "" {
		store.SetHotel(seed.HotelID)
	}
	if seed.TransferID != "" {
		store.SetTransfer(seed.TransferID)
	}
	for _, tourID := range seed.TourIDs {
		store.AddTour(tourID)
	}
	session, err := s.save(ctx, sessionID, store)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("wizard session created",
		zap.String("sessionId", sessionID),
		zap.Bool("preseeded", seed.PackageID != "" || seed.HotelID != "" || seed.TransferID != "" || len(seed.TourIDs) > 0))
	return session, nil
}

// Get returns the live session, repricing it against the current catalog so
// a stale persisted total is never served.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, sessionID, store)
}

func (s *DefaultSessionService) Summary(ctx context.Context, sessionID string) (*models.SelectionSummary, error) {
	store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel := store.Selection()
	snap, err := s.Resolve(ctx, &sel)
	if err != nil {
		return nil, err
	}
	return &models.SelectionSummary{
		SessionID:   sessionID,
		Lines:       SummaryLines(snap),
		TotalAmount: Total(&sel, snap),
		Currency:    s.Currency,
		CurrentStep: sel.CurrentStep,
		StepName:    StepName(sel.CurrentStep),
	}, nil
}

func (s *DefaultSessionService) SelectPackage(ctx context.Context, sessionID, packageID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetPackage(packageID) })
}

func (s *DefaultSessionService) SelectHotel(ctx context.Context, sessionID, hotelID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetHotel(hotelID) })
}

func (s *DefaultSessionService) SelectTransfer(ctx context.Context, sessionID, transferID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetTransfer(transferID) })
}

func (s *DefaultSessionService) AddTour(ctx context.Context, sessionID, tourID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.AddTour(tourID) })
}

func (s *DefaultSessionService) RemoveTour(ctx context.Context, sessionID, tourID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.RemoveTour(tourID) })
}

func (s *DefaultSessionService) SetTravelerDetails(ctx context.Context, sessionID string, details models.TravelerDetails) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetTravelerDetails(details) })
}

func (s *DefaultSessionService) PatchTravelerDetails(ctx context.Context, sessionID string, patch models.TravelerDetailsPatch) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.PatchTravelerDetails(patch) })
}

func (s *DefaultSessionService) SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetPaymentMethod(method) })
}

func (s *DefaultSessionService) SetInvoiceDetails(ctx context.Context, sessionID string, details models.InvoiceDetails) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.SetInvoiceDetails(details) })
}

// Advance applies the current step's gate before moving forward. A blocked
// gate returns a GateError and leaves the session unchanged.
func (s *DefaultSessionService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel := store.Selection()
	if err := CanAdvance(&sel); err != nil {
		return nil, err
	}
	store.NextStep()
	return s.save(ctx, sessionID, store)
}

func (s *DefaultSessionService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.PreviousStep() })
}

func (s *DefaultSessionService) Reset(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.mutate(ctx, sessionID, func(store *Store) { store.Reset() })
}

func (s *DefaultSessionService) MarkConfirmed(ctx context.Context, sessionID string) error {
	_, err := s.mutate(ctx, sessionID, func(store *Store) { store.SetCurrentStep(StepConfirmation) })
	return err
}

func (s *DefaultSessionService) Clear(ctx context.Context, sessionID string) error {
	if err := s.CacheClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear wizard session: %w", err)
	}
	return nil
}

// Resolve looks up every catalog reference on the selection. Missing entries
// are skipped so unresolved ids price as zero; only infrastructure errors
// propagate.
func (s *DefaultSessionService) Resolve(ctx context.Context, sel *models.BookingSelection) (CatalogSnapshot, error) {
	var snap CatalogSnapshot
	if sel.PackageID != "" {
		pkg, err := s.Catalog.GetPackage(ctx, sel.PackageID)
		if err != nil && !errors.Is(err, catalogRepo.ErrNotFound) {
			return snap, fmt.Errorf("failed to resolve package: %w", err)
		}
		snap.Package = pkg
	}
	if sel.HotelID != "" {
		hotel, err := s.Catalog.GetHotel(ctx, sel.HotelID)
		if err != nil && !errors.Is(err, catalogRepo.ErrNotFound) {
			return snap, fmt.Errorf("failed to resolve hotel: %w", err)
		}
		snap.Hotel = hotel
	}
	if sel.TransferID != "" {
		transfer, err := s.Catalog.GetTransfer(ctx, sel.TransferID)
		if err != nil && !errors.Is(err, catalogRepo.ErrNotFound) {
			return snap, fmt.Errorf("failed to resolve transfer: %w", err)
		}
		snap.Transfer = transfer
	}
	if len(sel.TourIDs) > 0 {
		tours, err := s.Catalog.GetTours(ctx, sel.TourIDs)
		if err != nil {
			return snap, fmt.Errorf("failed to resolve tours: %w", err)
		}
		snap.Tours = tours
	}
	return snap, nil
}

// mutate loads the session, applies the operation, and saves it back with a
// freshly derived total.
func (s *DefaultSessionService) mutate(ctx context.Context, sessionID string, op func(*Store)) (*models.WizardSession, error) {
	store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	op(store)
	return s.save(ctx, sessionID, store)
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*Store, error) {
	data, err := s.CacheClient.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var sel models.BookingSelection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return RestoreStore(sel), nil
}

// save reprices the selection and persists it, refreshing the TTL.
func (s *DefaultSessionService) save(ctx context.Context, sessionID string, store *Store) (*models.WizardSession, error) {
	sel := store.Selection()
	snap, err := s.Resolve(ctx, &sel)
	if err != nil {
		return nil, err
	}
	store.SetTotalAmount(Total(&sel, snap))
	sel = store.Selection()

	data, err := json.Marshal(sel)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.CacheClient.Set(ctx, sessionKey(sessionID), data, s.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}
	return &models.WizardSession{SessionID: sessionID, Selection: sel}, nil
}
