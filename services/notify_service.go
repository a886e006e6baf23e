// services/notify_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"sakecha-backend/models"
)

// Reorders pending longer than this show up in the daily digest.
const stalePendingAfter = 72 * time.Hour

// NotifyService sends SMS around the reorder workflow. It is an optional
// capability: without Twilio credentials it degrades to logging only.
type NotifyService struct {
	db         *gorm.DB
	client     *twilio.RestClient
	from       string
	adminPhone string
	enabled    bool
}

func NewNotifyService(db *gorm.DB) *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &NotifyService{
		db:         db,
		from:       os.Getenv("TWILIO_PHONE_NUMBER"),
		adminPhone: os.Getenv("ADMIN_PHONE"),
		enabled:    accountSid != "" && authToken != "",
	}
	if s.enabled {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return s
}

func (s *NotifyService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendPendingDigest)

	c.Start()
	logrus.Info("reorder digest scheduler started")
}

// ReorderRequested tells the administrator a new request arrived.
func (s *NotifyService) ReorderRequested(reorder *models.IngredientReorder) {
	message := fmt.Sprintf("New reorder: %d x %s requested on %s",
		reorder.Quantity, reorder.IngredientName, reorder.RequestDate.Format("2006-01-02"))
	s.send(s.adminPhone, message)
}

// ReorderStatusChanged tells the owning franchisee about the transition.
func (s *NotifyService) ReorderStatusChanged(reorder *models.IngredientReorder) {
	var franchisee models.Franchisee
	if err := s.db.First(&franchisee, "id = ?", reorder.FranchiseeID).Error; err != nil {
		logrus.WithError(err).Warn("reorder owner lookup failed, skipping notification")
		return
	}
	message := fmt.Sprintf("Your reorder of %s is now %s", reorder.IngredientName, reorder.Status)
	s.send(franchisee.Phone, message)
}

// SendPendingDigest reports reorders that have sat in Pending too long.
func (s *NotifyService) SendPendingDigest() {
	logrus.Info("starting pending reorder digest")

	cutoff := time.Now().Add(-stalePendingAfter)
	var stale []models.IngredientReorder
	if err := s.db.Where("status = ? AND created_at < ?", models.ReorderPending, cutoff).
		Order("created_at ASC").Find(&stale).Error; err != nil {
		logrus.WithError(err).Error("failed to fetch stale reorders")
		return
	}
	if len(stale) == 0 {
		logrus.Info("no stale pending reorders")
		return
	}

	message := fmt.Sprintf("%d reorder request(s) pending for more than 3 days", len(stale))
	for _, reorder := range stale {
		logrus.WithFields(logrus.Fields{
			"reorder":    reorder.ID,
			"ingredient": reorder.IngredientName,
			"requested":  reorder.RequestDate.Format("2006-01-02"),
		}).Warn("reorder still pending")
	}
	s.send(s.adminPhone, message)
}

func (s *NotifyService) send(to, message string) {
	if !s.enabled || to == "" {
		logrus.WithField("message", message).Info("sms disabled, logged only")
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send sms")
		return
	}
	if resp.Sid != nil {
		logrus.WithFields(logrus.Fields{"to": to, "sid": *resp.Sid}).Info("sms sent")
	} else {
		logrus.WithField("to", to).Info("sms sent, no SID returned")
	}
}
