package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	sessions *services.SessionManager
	alerts   *services.AlertService
	hub      *services.RealtimeHub
}

func NewEntryController(sessions *services.SessionManager, alerts *services.AlertService, hub *services.RealtimeHub) *EntryController {
	return &EntryController{sessions: sessions, alerts: alerts, hub: hub}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPersistence), errors.Is(err, services.ErrLoad):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// List fetches today's entries fresh from the store and returns them with
// the summary. A failed load keeps the last known good state server-side
// but is reported, never papered over.
func (ec *EntryController) List(c *gin.Context) {
	sess := ec.sessions.Get(c.GetString("userID"))

	entries, err := sess.Ledger().Load()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"summary": sess.Summary(),
	})
}

type AddEntryInput struct {
	FoodID string  `json:"food_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

func (ec *EntryController) Add(c *gin.Context) {
	var input AddEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := ec.sessions.Get(c.GetString("userID"))
	ledger := sess.Ledger()

	// Make sure the ledger has today's entries before mutating, so the
	// summary and the goal-crossing check see the whole day.
	if ledger.State() == services.StateUnloaded {
		if _, err := ledger.Load(); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
	}

	before := sess.Summary()

	entry, err := ledger.Add(input.FoodID, input.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	sum := sess.Summary()
	if sum.Goal > 0 && before.Total <= float64(sum.Goal) && sum.Total > float64(sum.Goal) {
		ec.alerts.EmitGoalExceeded(sess.UserID, sum.Total, sum.Goal)
	}
	ec.hub.BroadcastSummary(sess.UserID, sum)

	c.JSON(http.StatusCreated, gin.H{
		"entry":   entry,
		"summary": sum,
	})
}

func (ec *EntryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	sess := ec.sessions.Get(c.GetString("userID"))
	if err := sess.Ledger().Remove(uint(id)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	sum := sess.Summary()
	ec.hub.BroadcastSummary(sess.UserID, sum)

	c.JSON(http.StatusOK, gin.H{"summary": sum})
}

// ResetDay clears every entry for today. Best effort: the store has no
// batch delete, so a partial failure leaves a mix of deleted and surviving
// rows; the ledger reconciles against the store afterward either way and
// the response carries whatever survived.
func (ec *EntryController) ResetDay(c *gin.Context) {
	sess := ec.sessions.Get(c.GetString("userID"))
	ledger := sess.Ledger()

	clearErr := ledger.ClearAll()
	sum := sess.Summary()
	ec.hub.BroadcastSummary(sess.UserID, sum)

	if clearErr != nil {
		c.JSON(statusFor(clearErr), gin.H{
			"error":   clearErr.Error(),
			"entries": ledger.Entries(),
			"summary": sum,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": sum})
}
