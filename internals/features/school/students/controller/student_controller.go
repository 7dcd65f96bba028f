// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "examcontrol_backend/internals/features/school/students/dto"
	model "examcontrol_backend/internals/features/school/students/model"
	helper "examcontrol_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

/*
=========================================================

	IMPORT (bulk upsert)
	POST /api/a/students/import
	Body: array of UpsertStudentRequest. Kunci = NIK siswa;
	baris yang sudah ada ditimpa (import ulang = sinkron ulang).
	=========================================================
*/
func (ctl *StudentController) Import(c *fiber.Ctx) error {
	var reqs []dto.UpsertStudentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Daftar siswa kosong")
	}

	rows := make([]model.StudentModel, 0, len(reqs))
	for i := range reqs {
		reqs[i].Normalize()
		if err := reqs[i].Validate(ctl.Validator); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				reqs[i].StudentNationalID: {err.Error()},
			})
		}
		rows = append(rows, reqs[i].ToModel())
	}

	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_national_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_name", "student_grade", "student_grade_key", "student_section",
			"student_committee_number", "student_seating_number", "student_parent_phone",
			"student_updated_at",
		}),
	}).Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Data siswa berhasil diimpor", fiber.Map{"count": len(rows)})
}

/*
=========================================================

	LIST
	GET /api/a/students?committee=&grade=&q=&page=&per_page=
	=========================================================
*/
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	tx := ctl.DB.Model(&model.StudentModel{})
	if committee := strings.TrimSpace(c.Query("committee")); committee != "" {
		tx = tx.Where("student_committee_number = ?", committee)
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		tx = tx.Where("student_grade_key = ?", helper.GradeKey(grade))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("student_name ILIKE ? OR student_national_id LIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := tx.
		Order("student_committee_number ASC, student_seating_number ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/*
=========================================================

	DELETE
	DELETE /api/a/students/:id
	=========================================================
*/
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	res := ctl.DB.Where("student_id = ?", id).Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa dihapus", fiber.Map{"student_id": id})
}
