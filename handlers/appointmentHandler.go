package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/models"
	"ClinicRecords/services"
	"ClinicRecords/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload models.AppointmentCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payload.Trim()
	if err := utils.ValidateAppointmentCreate(payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment := payload.ToAppointment()
	if err := h.service.Create(c, appointment); err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	appointment, err := h.service.GetByID(c, uint(id))
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	var payload models.AppointmentUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payload.Trim()
	if err := utils.ValidateAppointmentUpdate(payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment, err := h.service.Update(c, uint(id), &payload)
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.Status(204)
}
