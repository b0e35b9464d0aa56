package passes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/metrics"
	"github.com/oskargbc/dws-wallet-service/internal/pkg/wallet"
	"github.com/oskargbc/dws-wallet-service/internal/ticket"
	"github.com/oskargbc/dws-wallet-service/internal/types"
	log "github.com/sirupsen/logrus"
)

const serviceName = "dws-wallet-service"

// creationErrorMessage is the only hard-failure body the endpoint returns,
// whichever step failed.
const creationErrorMessage = "An error occurred while creating the class."

const missingParamsMessage = "Please provide the required parameters: issuer_id, class_suffix, object_suffix."

// WalletIssuer is the slice of the wallet client the issuance endpoint
// depends on.
type WalletIssuer interface {
	CreateClass(ctx context.Context, issuerID, classSuffix string, fields ticket.Fields) (*wallet.ClassResult, error)
	CreateObject(ctx context.Context, issuerID, classSuffix, objectSuffix string, fields ticket.Fields) (*wallet.ObjectResult, error)
	SaveLink(issuerID, classSuffix, objectSuffix string) (*wallet.SaveLinkResult, error)
}

// EventPublisher publishes pass lifecycle messages.
type EventPublisher interface {
	PublishPassIssued(msg types.PassIssuedMessage) error
}

type PassesController struct {
	walletService   WalletIssuer
	rabbitmqService EventPublisher
}

func NewPassesController(walletSvc WalletIssuer, rmqSvc EventPublisher) *PassesController {
	return &PassesController{
		walletService:   walletSvc,
		rabbitmqService: rmqSvc,
	}
}

// CreateTicket handles POST /create-ticket/
func (pc *PassesController) CreateTicket(c *gin.Context) {
	issuerID := c.Query("issuer_id")
	classSuffix := c.Query("class_suffix")
	objectSuffix := c.Query("object_suffix")

	var missing []string
	if issuerID == "" {
		missing = append(missing, "issuer_id")
	}
	if classSuffix == "" {
		missing = append(missing, "class_suffix")
	}
	if objectSuffix == "" {
		missing = append(missing, "object_suffix")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, types.MissingParamsResponse{
			Error:   "Missing parameters",
			Missing: missing,
			Message: missingParamsMessage,
		})
		return
	}

	input := map[string]any{}
	if err := c.ShouldBindJSON(&input); err != nil {
		// No body, or one that isn't a JSON object: the ticket is issued
		// from the defaults alone.
		input = map[string]any{}
	}
	fields := ticket.Normalize(ticket.Defaults(), input)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	classResult, err := pc.walletService.CreateClass(ctx, issuerID, classSuffix, fields)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("Failed to ensure pass class")
		metrics.WalletOperations.WithLabelValues("create_class", "failure", serviceName).Inc()
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: creationErrorMessage})
		return
	}
	metrics.WalletOperations.WithLabelValues("create_class", classResult.Status, serviceName).Inc()

	// The class outcome does not gate the flow: an existing class is fine,
	// and a missing or unusable one resurfaces as class_not_found on the
	// object insert.

	objectResult, err := pc.walletService.CreateObject(ctx, issuerID, classSuffix, objectSuffix, fields)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("Failed to ensure pass object")
		metrics.WalletOperations.WithLabelValues("create_object", "failure", serviceName).Inc()
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: creationErrorMessage})
		return
	}
	metrics.WalletOperations.WithLabelValues("create_object", objectResult.Status, serviceName).Inc()

	if objectResult.HasError {
		c.JSON(http.StatusOK, objectResult)
		return
	}

	linkResult, err := pc.walletService.SaveLink(issuerID, classSuffix, objectSuffix)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("Failed to generate save link")
		metrics.WalletOperations.WithLabelValues("save_link", "failure", serviceName).Inc()
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: creationErrorMessage})
		return
	}
	metrics.WalletOperations.WithLabelValues("save_link", linkResult.Status, serviceName).Inc()

	// Publish message to RabbitMQ
	msg := types.PassIssuedMessage{
		ObjectID:         objectResult.ObjectID,
		ClassID:          issuerID + "." + classSuffix,
		EventName:        fields.Text("event_name"),
		TicketHolderName: fields.Text("ticket_holder_name"),
		TicketNumber:     fields.Text("ticket_number"),
		WalletLink:       linkResult.WalletLink,
		Timestamp:        time.Now(),
	}

	if err := pc.rabbitmqService.PublishPassIssued(msg); err != nil {
		log.WithError(err).Error("Failed to publish message to RabbitMQ")
		// Don't fail the request, the pass and save link already exist
	}

	log.WithFields(log.Fields{
		"object_id": objectResult.ObjectID,
		"class_id":  msg.ClassID,
	}).Info("Pass issued")

	c.JSON(http.StatusOK, linkResult)
}
