package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/service"
)

const expireDateFormat = "2006-01-02"

type VaHandler struct {
	vaSvs VaServicer
}

func NewVaHandler(vaSvs VaServicer) *VaHandler {
	return &VaHandler{
		vaSvs: vaSvs,
	}
}

type CreateVaRequestPayload struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Email       string          `json:"email" binding:"required,email"`
	Phone       string          `json:"phone" binding:"required,max=32"`
	Number      string          `json:"number" binding:"required,numeric,max=32"`
	Description string          `json:"description" binding:"max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpireDate  string          `json:"expire_date" binding:"required"`
	AccountType string          `json:"account_type" binding:"required,oneof=CLOSED OPEN INSTALLMENT"`
}

type VaRequestResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Number      string    `json:"number"`
	Name        string    `json:"name"`
	AccountType string    `json:"account_type"`
	Status      string    `json:"status"`
}

// Create POST RouteGroup + RequestsRoute. Принимает заявку, кладет ее в очередь
// обработки и сразу отвечает 202: результат провижининга наблюдаем только через
// Show по id заявки.
func (h *VaHandler) Create(c *gin.Context) {
	var payload CreateVaRequestPayload
	if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, bindErr).SetType(gin.ErrorTypePrivate)
		return
	}

	// дата без времени, в часовом поясе шлюза
	expireDate, dateErr := time.ParseInLocation(expireDateFormat, payload.ExpireDate, domain.GatewayTimezone)
	if dateErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, dateErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if payload.Amount.Sign() <= 0 {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, submitErr := h.vaSvs.Submit(reqCtx, service.SubmitRequestArgs{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Number:      payload.Number,
		Description: payload.Description,
		Amount:      payload.Amount,
		ExpireDate:  expireDate,
		AccountType: domain.AccountType(payload.AccountType),
	})
	if submitErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, submitErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusAccepted, convertRequestResponse(request))
}

// Show GET RouteGroup + RequestRoute. Читающая сторона fire-and-forget контракта:
// по статусу заявки виден итог асинхронной обработки.
func (h *VaHandler) Show(c *gin.Context) {
	id := c.Param("id")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, findErr := h.vaSvs.FindRequest(reqCtx, id)
	if findErr != nil {
		abortWithFindErr(c, findErr)
		return
	}

	c.JSON(http.StatusOK, convertRequestResponse(request))
}

type VirtualAccountResponse struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpireDate  string          `json:"expire_date"`
	AccountType string          `json:"account_type"`
	Status      string          `json:"status"`
}

// ShowAccount GET RouteGroup + AccountRoute.
func (h *VaHandler) ShowAccount(c *gin.Context) {
	number := c.Param("number")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, findErr := h.vaSvs.FindAccountByNumber(reqCtx, number)
	if findErr != nil {
		abortWithFindErr(c, findErr)
		return
	}

	c.JSON(http.StatusOK, VirtualAccountResponse{
		ID:          account.ID,
		CreatedAt:   account.CreatedAt,
		Number:      account.Number,
		Name:        account.Name,
		Email:       account.Email,
		Phone:       account.Phone,
		Description: account.Description,
		Amount:      account.Amount,
		ExpireDate:  account.ExpireDate.In(domain.GatewayTimezone).Format(expireDateFormat),
		AccountType: string(account.AccountType),
		Status:      string(account.Status),
	})
}

func abortWithFindErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

func convertRequestResponse(request *domain.VirtualAccountRequest) VaRequestResponse {
	return VaRequestResponse{
		ID:          request.ID,
		CreatedAt:   request.CreatedAt,
		Number:      request.Number,
		Name:        request.Name,
		AccountType: string(request.AccountType),
		Status:      string(request.Status),
	}
}
