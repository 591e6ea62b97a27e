package services

import (
	"errors"

	"github.com/devtasks/devtasks/internal/authz"
	"github.com/devtasks/devtasks/internal/models"
	"github.com/devtasks/devtasks/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type ProjectDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"ownerId"`
}

func projectDTO(p *models.Project) *ProjectDTO {
	return &ProjectDTO{ID: p.ID, Name: p.Name, OwnerID: p.OwnerID}
}

// ListOwned returns the projects owned by the principal. Listing is always
// scoped; there is no global project listing.
func (s *ProjectService) ListOwned(userID uint) ([]ProjectDTO, error) {
	var projects []models.Project
	if err := s.db.Where("owner_id = ?", userID).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}

	dtos := make([]ProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, *projectDTO(&projects[i]))
	}
	return dtos, nil
}

// Create creates a project owned by the principal.
func (s *ProjectService) Create(userID uint, req *CreateProjectRequest) (*ProjectDTO, error) {
	if !authz.CanCreateProject(userID) {
		return nil, response.NewForbidden("forbidden")
	}

	project := models.Project{
		Name:    req.Name,
		OwnerID: userID,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return projectDTO(&project), nil
}

// Get returns a project. Existence is checked before ownership.
func (s *ProjectService) Get(id, userID uint) (*ProjectDTO, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessProject(userID, project.OwnerID) {
		return nil, response.NewForbidden("forbidden")
	}
	return projectDTO(project), nil
}

// Rename changes a project's name. Owner only.
func (s *ProjectService) Rename(id, userID uint, req *CreateProjectRequest) (*ProjectDTO, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessProject(userID, project.OwnerID) {
		return nil, response.NewForbidden("forbidden")
	}

	project.Name = req.Name
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return projectDTO(project), nil
}

// Delete removes a project and all of its tasks in one transaction; either
// both are gone afterwards or neither is.
func (s *ProjectService) Delete(id, userID uint) error {
	project, err := s.find(id)
	if err != nil {
		return err
	}
	if !authz.CanAccessProject(userID, project.OwnerID) {
		return response.NewForbidden("forbidden")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}

// ListTasks returns the tasks of a project for the owner, or for a non-owner
// who is assigned to at least one task in it. The assignee gets only this
// list view; all other task and project routes stay owner-only.
func (s *ProjectService) ListTasks(id, userID uint) ([]TaskDTO, error) {
	project, err := s.find(id)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := s.db.Where("project_id = ?", project.ID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}

	assigned := false
	for i := range tasks {
		if tasks[i].AssignedToUserID != nil && *tasks[i].AssignedToUserID == userID {
			assigned = true
			break
		}
	}
	if !authz.CanListProjectTasks(userID, project.OwnerID, assigned) {
		return nil, response.NewForbidden("forbidden")
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		dtos = append(dtos, *taskDTO(&tasks[i]))
	}
	return dtos, nil
}

func (s *ProjectService) find(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}
