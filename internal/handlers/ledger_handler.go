package handler

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	service "ledger-classifier-backend/internal/services/processing"

	"ledger-classifier-backend/internal/models"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type LedgerHandler struct {
	service *service.Service
	logger  *log.Logger
}

func NewLedgerHandler(s *service.Service, logger *log.Logger) *LedgerHandler {
	return &LedgerHandler{service: s, logger: logger}
}

type installmentPayload struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"` // per-installment value in minor units
}

func detailsJSON(inst *installmentPayload) (datatypes.JSON, error) {
	if inst == nil {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]installmentPayload{"charges": *inst})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse("02-01-2006", value)
	}
	return t, err
}

func (h *LedgerHandler) CreateStatement(c *gin.Context) {
	var payload struct {
		Description  string              `json:"description"`
		Amount       decimal.Decimal     `json:"amount"`
		OccurredAt   string              `json:"occurred_at"` // "yyyy-mm-dd" or "dd-mm-yyyy"
		Installments *installmentPayload `json:"installments"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description required"})
		return
	}

	occurredAt, err := parseDate(payload.OccurredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurred_at, expected yyyy-mm-dd"})
		return
	}

	details, err := detailsJSON(payload.Installments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid installments payload"})
		return
	}

	st, err := h.service.CreateStatement(payload.Description, payload.Amount, occurredAt, details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "statement created", "statement": st})
}

// UploadStatements ingests a CSV of pending statements. Columns:
// date, description, amount, installment count, installment amount
// (minor units). The last two may be empty for plain statements.
func (h *LedgerHandler) UploadStatements(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	h.logger.Info("received statement file", "name", header.Filename, "size", header.Size)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header
	_, _ = reader.Read()

	inserted := 0
	rowNum := 0

	for {
		record, err := reader.Read()
		rowNum++

		if err == io.EOF {
			break
		}
		if err != nil {
			h.logger.Warn("skipping malformed row", "row", rowNum, "error", err)
			continue
		}
		if len(record) < 3 || strings.Join(record, "") == "" {
			continue
		}

		occurredAt, err := parseDate(strings.TrimSpace(record[0]))
		if err != nil {
			h.logger.Warn("skipping row with invalid date", "row", rowNum, "date", record[0])
			continue
		}

		description := strings.TrimSpace(record[1])
		if description == "" {
			h.logger.Warn("skipping row with empty description", "row", rowNum)
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			h.logger.Warn("skipping row with invalid amount", "row", rowNum, "amount", record[2])
			continue
		}

		var inst *installmentPayload
		if len(record) >= 5 && strings.TrimSpace(record[3]) != "" {
			count, err := strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				h.logger.Warn("skipping row with invalid installment count", "row", rowNum)
				continue
			}
			minor, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
			if err != nil {
				h.logger.Warn("skipping row with invalid installment amount", "row", rowNum)
				continue
			}
			inst = &installmentPayload{Count: count, Amount: minor}
		}

		details, err := detailsJSON(inst)
		if err != nil {
			continue
		}

		if _, err := h.service.CreateStatement(description, amount, occurredAt, details); err != nil {
			h.logger.Error("failed to insert statement", "row", rowNum, "error", err)
			continue
		}
		inserted++
	}

	h.logger.Info("statement upload finished", "file", header.Filename, "inserted", inserted)

	c.JSON(http.StatusOK, gin.H{
		"file":            header.Filename,
		"statementsAdded": inserted,
	})
}

func (h *LedgerHandler) CreateBankStatement(c *gin.Context) {
	var payload struct {
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		PostDate    string          `json:"post_date"`
		Document    string          `json:"document"`
		Kind        string          `json:"kind"` // "credit" or "debit"
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Description == "" || payload.Document == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description and document required"})
		return
	}

	kind := models.TransactionKind(payload.Kind)
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be credit or debit"})
		return
	}

	postDate, err := parseDate(payload.PostDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post_date, expected yyyy-mm-dd"})
		return
	}

	st, err := h.service.CreateBankStatement(payload.Description, payload.Amount, postDate, payload.Document, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bank statement created", "statement": st})
}

func (h *LedgerHandler) CreateCard(c *gin.Context) {
	var payload struct {
		Document  string `json:"document"`
		PayerName string `json:"payer_name"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Document == "" || payload.PayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document and payer_name required"})
		return
	}

	card, err := h.service.CreateCard(payload.Document, payload.PayerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "card registered", "card": card})
}

func (h *LedgerHandler) CreateRule(c *gin.Context) {
	var payload struct {
		Description        string           `json:"description"`
		CheckName          *string          `json:"check_name"`
		CheckValue         *decimal.Decimal `json:"check_value"`
		CheckValueOperator string           `json:"check_value_operator"`
		Category           string           `json:"category"`
		Name               string           `json:"name"`
		TypeEntry          string           `json:"type_entry"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Description == "" || payload.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description and category required"})
		return
	}

	rule, err := h.service.CreateRule(
		payload.Description,
		payload.CheckName,
		payload.CheckValue,
		payload.CheckValueOperator,
		payload.Category,
		payload.Name,
		payload.TypeEntry,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rule created", "rule": rule})
}

func (h *LedgerHandler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *LedgerHandler) ListRecords(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.service.ListRecords(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *LedgerHandler) GetStatement(c *gin.Context) {
	st, err := h.service.GetStatement(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "statement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statement": st})
}

func (h *LedgerHandler) ListPendingStatements(c *gin.Context) {
	statements, err := h.service.ListPendingStatements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

// ProcessStatements runs the generic pipeline once over the pending set.
func (h *LedgerHandler) ProcessStatements(c *gin.Context) {
	summary, err := h.service.ProcessStatements()
	if err != nil {
		h.logger.Error("statement run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "summary": summary})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ProcessBankStatements runs the bank pipeline once over the pending set.
func (h *LedgerHandler) ProcessBankStatements(c *gin.Context) {
	summary, err := h.service.ProcessBankStatements()
	if err != nil {
		h.logger.Error("bank statement run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "summary": summary})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
