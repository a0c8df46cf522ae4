package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	mw "github.com/case-framework/contact-manager/pkg/apihelpers/middlewares"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/gin-gonic/gin"
)

const (
	MSG_CONTACT_CREATED    = "Contact created successfully"
	MSG_CONTACTS_RETRIEVED = "Contacts retrieved successfully"
	MSG_CONTACT_UPDATED    = "Contact updated successfully"
	MSG_CONTACT_DELETED    = "Contact deleted successfully"
)

func (h *HttpEndpoints) AddContactsAPI(rg *gin.RouterGroup) {
	contactsGroup := rg.Group("/contacts")
	{
		contactsGroup.GET("", h.getContacts)
		contactsGroup.POST("", mw.RequirePayload(), h.createContact)
		contactsGroup.PUT("/:id", mw.RequirePayload(), h.updateContact)
		contactsGroup.DELETE("/:id", h.deleteContact)
	}
}

func (h *HttpEndpoints) createContact(c *gin.Context) {
	var payload types.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Warn("failed to parse contact payload", slog.String("error", err.Error()))
		apihelpers.AbortWithErrorResponse(c, http.StatusBadRequest, MSG_INVALID_REQUEST_BODY)
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), payload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slog.Info("contact created", slog.String("contactID", contact.ID.Hex()))
	apihelpers.WriteResponse(c, http.StatusCreated, MSG_CONTACT_CREATED, contact)
}

func (h *HttpEndpoints) getContacts(c *gin.Context) {
	query, err := apihelpers.ParseListQueryFromCtx(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := h.contactService.List(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	apihelpers.WriteResponse(c, http.StatusOK, MSG_CONTACTS_RETRIEVED, page)
}

func (h *HttpEndpoints) updateContact(c *gin.Context) {
	contactID := c.Param("id")

	var payload types.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Warn("failed to parse contact payload", slog.String("contactID", contactID), slog.String("error", err.Error()))
		apihelpers.AbortWithErrorResponse(c, http.StatusBadRequest, MSG_INVALID_REQUEST_BODY)
		return
	}

	contact, err := h.contactService.UpdateByID(c.Request.Context(), contactID, payload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slog.Info("contact updated", slog.String("contactID", contactID))
	apihelpers.WriteResponse(c, http.StatusOK, MSG_CONTACT_UPDATED, contact)
}

func (h *HttpEndpoints) deleteContact(c *gin.Context) {
	contactID := c.Param("id")

	contact, err := h.contactService.DeleteByID(c.Request.Context(), contactID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slog.Info("contact deleted", slog.String("contactID", contactID))
	apihelpers.WriteResponse(c, http.StatusOK, MSG_CONTACT_DELETED, contact)
}
