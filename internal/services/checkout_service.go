package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/models"
)

// CheckoutService turns a set of selected catalog locations into a settled
// subscription. The "manual" gateway settles immediately (the legacy app only
// simulated a card payment); the "midtrans" gateway creates a sandbox Snap
// transaction and commits when the settlement callback arrives. Either way
// the commit path is the same merge, priced from the server-side catalog.
type CheckoutService struct {
	db             *gorm.DB
	midtransClient *MidtransService
}

func NewCheckoutService(db *gorm.DB, midtransClient *MidtransService) *CheckoutService {
	return &CheckoutService{
		db:             db,
		midtransClient: midtransClient,
	}
}

// checkoutRequest is what we stash in the session's RequestMetadata so the
// callback knows which locations were being bought
type checkoutRequest struct {
	SelectedIDs []string `json:"selected_ids"`
}

// CheckoutResult tells the client where to go next
type CheckoutResult struct {
	Settled     bool    `json:"settled"`
	Amount      float64 `json:"amount"`
	OrderID     string  `json:"order_id,omitempty"`
	Token       string  `json:"token,omitempty"`
	RedirectURL string  `json:"redirect_url,omitempty"`
}

// Gateway picks the configured payment gateway, defaulting to manual
func Gateway() models.PaymentGateway {
	if os.Getenv("PAYMENT_GATEWAY") == string(models.PaymentGatewayMidtrans) {
		return models.PaymentGatewayMidtrans
	}
	return models.PaymentGatewayManual
}

// InitiateCheckout starts (or settles) a checkout for the user's selection.
// Selections that are still active entitlements cost nothing; only locked
// entries are priced.
func (s *CheckoutService) InitiateCheckout(user *models.User, selectedIDs []string, callbackURL string) (*CheckoutResult, error) {
	now := time.Now()

	var payableIDs []string
	for _, id := range selectedIDs {
		loc, ok := listings.CatalogByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown location id %q", id)
		}
		if listings.IsLocationLocked(user.SubscriptionLocations, loc, now) {
			payableIDs = append(payableIDs, id)
		}
	}

	total := listings.SelectionTotal(payableIDs)
	orderID := fmt.Sprintf("subscription-%s-%d", user.ID, now.Unix())

	// Nothing to charge: commit straight away
	if total == 0 || Gateway() == models.PaymentGatewayManual {
		if err := s.CommitSubscription(user.ID, selectedIDs, now); err != nil {
			return nil, err
		}

		reqBytes, _ := json.Marshal(checkoutRequest{SelectedIDs: selectedIDs})
		session := models.PaymentSession{
			UserID:          user.ID,
			PaymentGateway:  models.PaymentGatewayManual,
			OrderID:         orderID,
			Amount:          total,
			IsActive:        false,
			RequestMetadata: reqBytes,
		}
		if err := s.db.Create(&session).Error; err != nil {
			return nil, err
		}

		return &CheckoutResult{Settled: true, Amount: total, OrderID: orderID}, nil
	}

	// A newer checkout supersedes any session still waiting on the gateway
	if err := s.cancelActiveSessions(user.ID); err != nil {
		return nil, err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(total),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Callbacks: &snap.Callbacks{
			Finish: callbackURL,
		},
	}

	resp, err := s.midtransClient.CreateTransaction(orderID, int64(total), req)
	if err != nil {
		return nil, err
	}

	reqBytes, _ := json.Marshal(checkoutRequest{SelectedIDs: selectedIDs})
	respBytes, _ := json.Marshal(resp)

	session := models.PaymentSession{
		UserID:           user.ID,
		PaymentGateway:   models.PaymentGatewayMidtrans,
		OrderID:          orderID,
		Amount:           total,
		IsActive:         true,
		RequestMetadata:  reqBytes,
		ResponseMetadata: respBytes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Amount:      total,
		OrderID:     orderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// cancelActiveSessions voids a user's still-open gateway sessions so only one
// checkout can settle
func (s *CheckoutService) cancelActiveSessions(userID string) error {
	var sessions []models.PaymentSession
	err := s.db.Where("user_id = ? AND is_active = ? AND payment_gateway = ?",
		userID, true, models.PaymentGatewayMidtrans).Find(&sessions).Error
	if err != nil {
		return err
	}

	for _, session := range sessions {
		if err := s.midtransClient.CancelTransaction(session.OrderID); err != nil {
			// The order may already be expired or settled on the gateway side;
			// the callback handler owns that outcome
			continue
		}
		session.IsActive = false
		if err := s.db.Save(&session).Error; err != nil {
			return err
		}
	}
	return nil
}

// verifiedCallbackStatus picks the transaction status to act on. Only the
// gateway's own answer counts; when the re-check fails the notification is
// not acted on at all.
func verifiedCallbackStatus(verified *coreapi.TransactionStatusResponse, checkErr error) (string, error) {
	if checkErr != nil {
		return "", checkErr
	}
	if verified == nil || verified.TransactionStatus == "" {
		return "", fmt.Errorf("gateway returned no transaction status")
	}
	return verified.TransactionStatus, nil
}

// HandleGatewayCallback records a gateway notification and, on settlement,
// commits the subscription the session was opened for. The status is
// re-checked against the gateway before anything happens; the notification
// body alone is never trusted, and a failed re-check leaves the session
// untouched.
func (s *CheckoutService) HandleGatewayCallback(orderID, transactionStatus string, payload json.RawMessage) error {
	history := models.PaymentCallbackHistory{
		PaymentGateway: models.PaymentGatewayMidtrans,
		OrderID:        orderID,
		Metadata:       payload,
	}
	if err := s.db.Create(&history).Error; err != nil {
		return err
	}

	var session models.PaymentSession
	if err := s.db.Where("order_id = ? AND is_active = ?", orderID, true).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil // already processed or unknown order
		}
		return err
	}

	verified, checkErr := s.midtransClient.CheckTransaction(orderID)
	verifiedStatus, err := verifiedCallbackStatus(verified, checkErr)
	if err != nil {
		// Session stays active; the gateway retries the notification
		return fmt.Errorf("could not verify order %s: %w", orderID, err)
	}
	if verifiedStatus != transactionStatus {
		log.Printf("order %s: notification said %q but gateway says %q", orderID, transactionStatus, verifiedStatus)
	}

	switch verifiedStatus {
	case "settlement", "capture":
		var req checkoutRequest
		if err := json.Unmarshal(session.RequestMetadata, &req); err != nil {
			return fmt.Errorf("broken request metadata for order %s: %w", orderID, err)
		}
		if err := s.CommitSubscription(session.UserID, req.SelectedIDs, time.Now()); err != nil {
			return err
		}
		session.IsActive = false
		return s.db.Save(&session).Error
	case "deny", "expire", "cancel", "failure":
		session.IsActive = false
		return s.db.Save(&session).Error
	}

	return nil
}

// CommitSubscription replaces the user's subscription rows with the merge of
// their still-active entries and the newly purchased ones, in one
// transaction.
func (s *CheckoutService) CommitSubscription(userID string, selectedIDs []string, now time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.SubscriptionLocation
		if err := tx.Where("user_id = ?", userID).Find(&existing).Error; err != nil {
			return err
		}

		merged := listings.MergeSelections(userID, existing, selectedIDs, now)

		if err := tx.Where("user_id = ?", userID).Delete(&models.SubscriptionLocation{}).Error; err != nil {
			return err
		}
		for i := range merged {
			merged[i].ID = 0
			merged[i].DeletedAt = gorm.DeletedAt{}
		}
		if len(merged) > 0 {
			if err := tx.Create(&merged).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
