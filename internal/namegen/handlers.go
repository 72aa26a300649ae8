package namegen

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/namegenius/api/internal/errors"
	"github.com/namegenius/api/internal/logger"
)

// Handler exposes the generation pipeline over HTTP.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithComponent("namegen-handler"),
	}
}

// GenerateNames handles POST /api/generate-names.
// Success: 200 {"names": [...]}. Validation failures are 400 naming the
// missing field; upstream timeouts are 504; everything else upstream-related
// is 500 with a message that never carries credential detail.
func (h *Handler) GenerateNames(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context())

	var raw GenerateNamesRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		log.Warn("failed to bind request", slog.String("error", err.Error()))
		apierrors.AbortWithBadRequest(c, "invalid request body", nil)
		return
	}

	names, err := h.service.Generate(c.Request.Context(), raw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateNamesResponse{Names: names})
}

// CheckDomainsRequest is the payload of POST /api/check-domains.
type CheckDomainsRequest struct {
	Names []string `json:"names"`
}

// CheckDomainsResponse maps each name to its simulated availability.
type CheckDomainsResponse struct {
	Results map[string]bool `json:"results"`
}

// CheckDomains handles POST /api/check-domains, the simulated bulk
// availability lookup.
func (h *Handler) CheckDomains(c *gin.Context) {
	var req CheckDomainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.AbortWithBadRequest(c, "invalid request body", nil)
		return
	}

	if len(req.Names) == 0 {
		apierrors.AbortWithBadRequest(c, "missing required field: names", nil)
		return
	}

	c.JSON(http.StatusOK, CheckDomainsResponse{Results: h.service.CheckDomains(req.Names)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	log := h.logger.WithContext(c.Request.Context())

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		apierrors.AbortWithBadRequest(c, validationErr.Error(), nil)
		return
	}

	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		switch gatewayErr.Kind {
		case GatewayTimeout:
			apierrors.AbortWithGatewayTimeout(c, "name generation timed out, please try again", nil)
		case GatewayUnauthorized:
			// Configuration defect. Log the detail for operators, never the
			// credential state to the client.
			log.Error("generation gateway unauthorized", slog.String("detail", gatewayErr.Detail))
			apierrors.AbortWithInternal(c, "name generation service is not configured", nil)
		default:
			log.Error("generation gateway failed",
				slog.String("kind", string(gatewayErr.Kind)),
				slog.String("detail", gatewayErr.Detail))
			apierrors.AbortWithInternal(c, "name generation failed, please try again", nil)
		}
		return
	}

	var normalizationErr *NormalizationError
	if errors.As(err, &normalizationErr) {
		log.Error("generation response unusable",
			slog.String("kind", string(normalizationErr.Kind)),
			slog.String("detail", normalizationErr.Detail))
		apierrors.AbortWithInternal(c, "invalid response from generation service", nil)
		return
	}

	log.Error("generation failed", slog.String("error", err.Error()))
	apierrors.AbortWithInternal(c, "name generation failed", nil)
}
