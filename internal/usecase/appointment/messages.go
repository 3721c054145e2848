package appointment

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const maxMessageLength = 1000

func loadForDiscussion(ctx context.Context, repo domain.Repository, caller access.Identity, id uuid.UUID) (*models.Appointment, error) {
	ap, err := load(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if ap.Service == nil {
		return nil, errServiceNotFound
	}
	if err := access.CanDiscuss(caller, ap.Service.BarbershopID, ap.ClientID); err != nil {
		return nil, err
	}
	return ap, nil
}

// ===============================
// Post
// ===============================

type PostMessage struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewPostMessage(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *PostMessage {
	return &PostMessage{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "post_message")),
	}
}

func (uc *PostMessage) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
	body string,
) (*models.AppointmentMessage, error) {

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, httperr.BadRequest("invalid_message", "message body is required")
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, httperr.BadRequest("invalid_message", fmt.Sprintf("message must be at most %d characters", maxMessageLength))
	}

	ap, err := loadForDiscussion(ctx, uc.repo, caller, id)
	if err != nil {
		return nil, err
	}

	msg := &models.AppointmentMessage{
		AppointmentID: ap.ID,
		AuthorID:      caller.UserID,
		Body:          body,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	uc.audit.Dispatch(event(caller, ap, "message_posted", map[string]any{
		"messageId": msg.ID,
	}))
	uc.metrics.AppointmentAction("message_posted")

	return msg, nil
}

// ===============================
// List
// ===============================

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
) ([]models.AppointmentMessage, error) {

	ap, err := loadForDiscussion(ctx, uc.repo, caller, id)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListMessages(ctx, ap.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
