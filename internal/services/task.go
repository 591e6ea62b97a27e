package services

import (
	"errors"

	"github.com/devtasks/devtasks/internal/authz"
	"github.com/devtasks/devtasks/internal/models"
	"github.com/devtasks/devtasks/pkg/response"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

type CreateTaskRequest struct {
	Title            string  `json:"title" binding:"required,max=300"`
	Description      string  `json:"description" binding:"max=2000"`
	ProjectID        uint    `json:"projectId" binding:"required"`
	AssignedToUserID *uint   `json:"assignedToUserId"`
	Status           *string `json:"status"`
}

// UpdateTaskRequest applies only the fields present in the request body;
// absent fields keep their prior values. A JSON null assignee counts as
// absent, so an assignment cannot be cleared through this route.
type UpdateTaskRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=300"`
	Description      *string `json:"description" binding:"omitempty,max=2000"`
	Status           *string `json:"status"`
	AssignedToUserID *uint   `json:"assignedToUserId"`
}

type TaskDTO struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	ProjectID        uint   `json:"projectId"`
	AssignedToUserID *uint  `json:"assignedToUserId"`
}

func taskDTO(t *models.Task) *TaskDTO {
	return &TaskDTO{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		ProjectID:        t.ProjectID,
		AssignedToUserID: t.AssignedToUserID,
	}
}

// Create adds a task to a project. The project must exist (404 before any
// ownership check) and the principal must be its owner. Status defaults to
// ToDo at this construction boundary.
func (s *TaskService) Create(userID uint, req *CreateTaskRequest) (*TaskDTO, error) {
	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	if !authz.CanCreateTask(userID, project.OwnerID) {
		return nil, response.NewForbidden("forbidden")
	}

	status := models.StatusToDo
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, response.NewValidation("invalid status")
		}
		status = *req.Status
	}

	task := models.Task{
		Title:            req.Title,
		Description:      req.Description,
		Status:           status,
		ProjectID:        req.ProjectID,
		AssignedToUserID: req.AssignedToUserID,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return taskDTO(&task), nil
}

// Get returns a single task. Owner of the owning project only; a task's
// assignee has no item-level access.
func (s *TaskService) Get(id, userID uint) (*TaskDTO, error) {
	task, _, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	return taskDTO(task), nil
}

// ListByProject returns the tasks of a project, owner only. The assignee
// list view lives on the project route, not here.
func (s *TaskService) ListByProject(projectID, userID uint) ([]TaskDTO, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	if !authz.CanAccessTask(userID, project.OwnerID) {
		return nil, response.NewForbidden("forbidden")
	}

	var tasks []models.Task
	if err := s.db.Where("project_id = ?", projectID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		dtos = append(dtos, *taskDTO(&tasks[i]))
	}
	return dtos, nil
}

// Update applies a sparse update to a task. ProjectID is immutable and not
// part of the request.
func (s *TaskService) Update(id, userID uint, req *UpdateTaskRequest) (*TaskDTO, error) {
	task, _, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewValidation("title must not be empty")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, response.NewValidation("invalid status")
		}
		task.Status = *req.Status
	}
	if req.AssignedToUserID != nil {
		task.AssignedToUserID = req.AssignedToUserID
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return taskDTO(task), nil
}

// Delete removes a task, owner only.
func (s *TaskService) Delete(id, userID uint) error {
	task, _, err := s.findOwned(id, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(task).Error
}

// findOwned resolves a task and its owning project, returning NotFound for a
// missing task before any ownership decision is made.
func (s *TaskService) findOwned(id, userID uint) (*models.Task, *models.Project, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewNotFound("task not found")
		}
		return nil, nil, err
	}

	var project models.Project
	if err := s.db.First(&project, task.ProjectID).Error; err != nil {
		return nil, nil, err
	}

	if !authz.CanAccessTask(userID, project.OwnerID) {
		return nil, nil, response.NewForbidden("forbidden")
	}
	return &task, &project, nil
}
