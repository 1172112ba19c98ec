package handlers

import (
	"errors"
	"net/http"

	"pushkit_api/middlewares"
	"pushkit_api/notifications"
	"pushkit_api/tools"
	"pushkit_api/types"

	"github.com/gin-gonic/gin"
)

var errNotOwner = errors.New("registration belongs to another user")

// SetMessagingRegistrationToken verifies and stores the messaging registration token for a client.
// A missing clientId is generated and returned. A registration owned by
// another user can only be replaced by an admin, and keeps its owner.
func SetMessagingRegistrationToken(logger types.EntryLogger, store RegistrationStore, sender notifications.DryRunSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middlewares.CurrentUser(c)
		if user == nil || user.UID == "" {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, errors.New("no authenticated user"))
			return
		}

		token := c.PostForm("token")
		if token == "" {
			tools.LogError(logger, c, errors.New("token is required"))
			return
		}

		clientId := c.PostForm("clientId")
		if clientId == "" {
			var err error
			clientId, err = tools.GenerateClientId()
			if err != nil {
				tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
				return
			}
		}

		existing, err := store.Get(c, clientId)
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		owner := user.UID
		if existing != nil && existing.Owner != "" {
			if existing.Owner != user.UID && !middlewares.IsAdmin(user) {
				tools.LogErrorWithStatus(logger, c, http.StatusForbidden, errNotOwner)
				return
			}
			owner = existing.Owner
		}

		if err := notifications.VerifyRegistrationToken(c, sender, logger, token); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = store.Save(c, types.MessagingRegistration{ClientId: clientId, Token: token, Owner: owner})
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"clientId": clientId,
		})
	}
}

// GetMessagingRegistration returns a registration to its owner or to an admin.
func GetMessagingRegistration(logger types.EntryLogger, store RegistrationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		registration, err := store.Get(c, c.Param("clientId"))
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}
		if registration == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			return
		}

		user := middlewares.CurrentUser(c)
		if !middlewares.IsAdmin(user) && (user == nil || user.UID == "" || registration.Owner != user.UID) {
			tools.LogErrorWithStatus(logger, c, http.StatusForbidden, errNotOwner)
			return
		}

		c.JSON(http.StatusOK, registration)
	}
}

func GetMessagingRegistrations(logger types.EntryLogger, store RegistrationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		registrations, err := store.List(c)
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, registrations)
	}
}

func DeleteMessagingRegistration(logger types.EntryLogger, store RegistrationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c, c.Param("clientId")); err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}
