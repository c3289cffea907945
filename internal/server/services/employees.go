package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffql/internal/server/upload"
	"github.com/dmitrijs2005/staffql/internal/server/validation"
)

// EmployeeService implements employee CRUD and search.
//
// A photo that was uploaded before a later storage failure stays on the
// asset host; nothing cleans it up.
type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	uploader    upload.Uploader
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// NewEmployeeService wires the service. A nil uploader disables photos.
func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager, uploader upload.Uploader,
	logger logging.Logger, mt *metrics.Metrics) *EmployeeService {
	return &EmployeeService{
		db:          db,
		repomanager: m,
		uploader:    uploader,
		logger:      logger.With("module", "employees"),
		metrics:     mt,
	}
}

func (s *EmployeeService) GetAll(ctx context.Context) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "getAllEmployees", time.Now(), &res)

	list, err := s.repomanager.Employees(s.db).List(ctx, models.EmployeeFilter{})
	if err != nil {
		s.logger.Error(ctx, "list employees failed", logging.Err(err))
		return models.ListResult(false, withCause(MsgFetchFailed, err), nil)
	}

	return models.ListResult(true, MsgEmployeesRetrieved, list)
}

func (s *EmployeeService) GetByEid(ctx context.Context, eid string) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "getEmployeeByEid", time.Now(), &res)

	e, err := s.repomanager.Employees(s.db).GetByID(ctx, eid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Fail(MsgEmployeeNotFound)
		}
		s.logger.Error(ctx, "get employee failed", "eid", eid, logging.Err(err))
		return models.Fail(withCause(MsgFetchEmployeeFailed, err))
	}

	return &models.Result{Success: true, Message: MsgEmployeeFound, Employee: e}
}

// Search matches designation and department as case-insensitive
// substrings. At least one of them must be non-empty.
func (s *EmployeeService) Search(ctx context.Context, designation, department string) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "getEmployeesByDesignationOrDepartment", time.Now(), &res)

	if designation == "" && department == "" {
		return models.ListResult(false, MsgSearchCriteria, nil)
	}

	list, err := s.repomanager.Employees(s.db).List(ctx, models.EmployeeFilter{
		Designation: designation,
		Department:  department,
	})
	if err != nil {
		s.logger.Error(ctx, "search employees failed", logging.Err(err))
		return models.ListResult(false, withCause(MsgFetchFailed, err), nil)
	}

	return models.ListResult(true, MsgEmployeesRetrieved, list)
}

func (s *EmployeeService) Add(ctx context.Context, in models.EmployeeInput) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "addEmployee", time.Now(), &res)

	v := validation.Validate(validation.EmployeeCreate, in.Record())
	if !v.Valid {
		return models.Invalid(v.Errors)
	}

	repo := s.repomanager.Employees(s.db)
	email := v.Values["email"].(string)

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return models.Fail(MsgEmployeeEmailExists)
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "email lookup failed", logging.Err(err))
		return models.Fail(withCause(MsgAddFailed, err))
	}

	photo, err := s.uploadPhoto(ctx, in.EmployeePhotoBase64)
	if err != nil {
		return models.Fail(withCause(MsgPhotoUploadFailed, err))
	}

	e := &models.Employee{}
	applyValues(e, v.Values)
	e.EmployeePhoto = photo

	created, err := repo.Create(ctx, e)
	if err != nil {
		s.warnOrphan(ctx, photo)
		if errors.Is(err, common.ErrorAlreadyExists) {
			return models.Fail(MsgEmployeeEmailExists)
		}
		s.logger.Error(ctx, "employee create failed", logging.Err(err))
		return models.Fail(withCause(MsgAddFailed, err))
	}

	s.logger.Info(ctx, "employee added", "eid", created.ID, "email", created.Email)

	return &models.Result{Success: true, Message: MsgEmployeeAdded, Employee: created}
}

// Update merges the present input fields over the stored record and
// validates the merged result before saving it.
func (s *EmployeeService) Update(ctx context.Context, eid string, in models.EmployeeInput) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "updateEmployeeByEid", time.Now(), &res)

	repo := s.repomanager.Employees(s.db)

	existing, err := repo.GetByID(ctx, eid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Fail(MsgEmployeeNotFound)
		}
		s.logger.Error(ctx, "get employee failed", "eid", eid, logging.Err(err))
		return models.Fail(withCause(MsgUpdateFailed, err))
	}

	merged := existing.Record()
	for k, val := range in.Record() {
		merged[k] = val
	}

	v := validation.Validate(validation.EmployeeUpdate, merged)
	if !v.Valid {
		return models.Invalid(v.Errors)
	}

	if email := v.Values["email"].(string); in.Email != nil && email != existing.Email {
		other, err := repo.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != existing.ID:
			return models.Fail(MsgAnotherEmployeeEmail)
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			s.logger.Error(ctx, "email lookup failed", logging.Err(err))
			return models.Fail(withCause(MsgUpdateFailed, err))
		}
	}

	photo, err := s.uploadPhoto(ctx, in.EmployeePhotoBase64)
	if err != nil {
		return models.Fail(withCause(MsgPhotoUploadFailed, err))
	}

	e := *existing
	applyValues(&e, v.Values)
	if photo != nil {
		e.EmployeePhoto = photo
	}

	updated, err := repo.Update(ctx, &e)
	if err != nil {
		s.warnOrphan(ctx, photo)
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return models.Fail(MsgAnotherEmployeeEmail)
		case errors.Is(err, common.ErrorNotFound):
			return models.Fail(MsgEmployeeNotFound)
		}
		s.logger.Error(ctx, "employee update failed", "eid", eid, logging.Err(err))
		return models.Fail(withCause(MsgUpdateFailed, err))
	}

	return &models.Result{Success: true, Message: MsgEmployeeUpdated, Employee: updated}
}

func (s *EmployeeService) Delete(ctx context.Context, eid string) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "deleteEmployeeByEid", time.Now(), &res)

	if err := s.repomanager.Employees(s.db).Delete(ctx, eid); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Fail(MsgEmployeeNotFound)
		}
		s.logger.Error(ctx, "employee delete failed", "eid", eid, logging.Err(err))
		return models.Fail(withCause(MsgDeleteFailed, err))
	}

	s.logger.Info(ctx, "employee deleted", "eid", eid)

	return &models.Result{Success: true, Message: MsgEmployeeDeleted}
}

// uploadPhoto returns (nil, nil) when there is nothing to upload: no data
// URI, an undecodable one, or no uploader configured.
func (s *EmployeeService) uploadPhoto(ctx context.Context, dataURI *string) (*string, error) {
	if s.uploader == nil || dataURI == nil || *dataURI == "" {
		return nil, nil
	}

	data, contentType, ok := upload.DecodeDataURI(*dataURI)
	if !ok {
		s.logger.Warn(ctx, "ignoring malformed photo data URI")
		return nil, nil
	}

	url, err := s.uploader.Upload(ctx, data, contentType)
	s.metrics.ObserveUpload(err)
	if err != nil {
		s.logger.Error(ctx, "photo upload failed", logging.Err(err))
		return nil, err
	}

	return &url, nil
}

// warnOrphan reports a photo that was uploaded but never referenced.
func (s *EmployeeService) warnOrphan(ctx context.Context, url *string) {
	if url != nil {
		s.logger.Warn(ctx, "uploaded photo left unreferenced", "url", *url)
	}
}

// applyValues copies validated employee fields onto e.
func applyValues(e *models.Employee, v validation.Record) {
	if s, ok := v["first_name"].(string); ok {
		e.FirstName = s
	}
	if s, ok := v["last_name"].(string); ok {
		e.LastName = s
	}
	if s, ok := v["email"].(string); ok {
		e.Email = s
	}
	if s, ok := v["gender"].(string); ok {
		e.Gender = s
	}
	if s, ok := v["designation"].(string); ok {
		e.Designation = s
	}
	if s, ok := v["department"].(string); ok {
		e.Department = s
	}
	if f, ok := validation.ToFloat(v["salary"]); ok {
		e.Salary = f
	}
	switch d := v["date_of_joining"].(type) {
	case string:
		if t, ok := validation.ParseDate(d); ok {
			e.DateOfJoining = t
		}
	case time.Time:
		e.DateOfJoining = d
	}
}
