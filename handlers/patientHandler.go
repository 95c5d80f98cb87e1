package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/models"
	"ClinicRecords/services"
	"ClinicRecords/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload models.PatientCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payload.Trim()
	if err := utils.ValidatePatientCreate(payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient := payload.ToPatient()
	if err := h.service.Create(c, patient); err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	patient, err := h.service.GetByID(c, uint(id))
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	var payload models.PatientUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payload.Trim()
	if err := utils.ValidatePatientUpdate(payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient, err := h.service.Update(c, uint(id), &payload)
	if err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		middlewares.HttpError(c, err.Error(), statusForError(err), err)
		return
	}
	c.Status(204)
}
