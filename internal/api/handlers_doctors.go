package api

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := handler.repos.Doctors.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load doctors")
	}
	return c.JSON(doctors)
}

func (handler *Handler) GetDoctor(c *fiber.Ctx) error {
	doctorID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid doctor id")
	}
	doctor, err := handler.repos.Doctors.Find(doctorID)
	if err != nil {
		return notFoundOr500(c, err, "failed to load doctor")
	}
	return c.JSON(doctor)
}

func (handler *Handler) CreateDoctor(c *fiber.Ctx) error {
	var input doctorInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	doctor := models.Doctor{
		Name:      input.Name,
		Clinic:    input.Clinic,
		Specialty: input.Specialty,
		City:      input.City,
		Phone:     input.Phone,
		Email:     input.Email,
	}
	if err := handler.repos.Doctors.Create(&doctor); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create doctor")
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}
