package services

import (
	"errors"
	"time"

	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) List(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where("user_id = ?", userID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create builds the roundStatus map from the submitted round names: every
// name starts incomplete. Duplicate names collapse to a single entry.
func (s *JobService) Create(userID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	roundStatus := models.RoundStatus{}
	for _, round := range req.Rounds {
		roundStatus[round] = 0
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = &parsed
	}

	job := &models.Job{
		UserID:      userID,
		Jobtitle:    req.Jobtitle,
		Company:     req.Company,
		Location:    req.Location,
		Jobtype:     req.Jobtype,
		Salary:      req.Salary,
		Description: req.Description,
		Date:        date,
		Review:      req.Review,
		RoundStatus: roundStatus,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ToggleRound flips a single round's completion flag. The key is merged
// into the stored map, so toggling an unknown round name adds it on the
// fly. Round names are matched exactly, no trimming or case folding.
func (s *JobService) ToggleRound(jobID, userID uint, round string, completed bool) (*models.Job, error) {
	job, err := s.findOwned(jobID, userID)
	if err != nil {
		return nil, err
	}

	roundStatus := job.RoundStatus
	if roundStatus == nil {
		roundStatus = models.RoundStatus{}
	}
	if completed {
		roundStatus[round] = 1
	} else {
		roundStatus[round] = 0
	}
	job.RoundStatus = roundStatus

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ApplyFieldEdit overwrites exactly the fields present in the request; nil
// pointers are left untouched. A present RoundStatus replaces the stored
// map wholesale, unlike ToggleRound's per-key merge. A stale snapshot in
// the payload therefore clobbers toggles that landed in between; that is
// the documented last-write-wins behavior of this endpoint.
func (s *JobService) ApplyFieldEdit(jobID, userID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.findOwned(jobID, userID)
	if err != nil {
		return nil, err
	}

	if req.Jobtitle != nil {
		job.Jobtitle = *req.Jobtitle
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Review != nil {
		job.Review = *req.Review
	}
	if req.RoundStatus != nil {
		job.RoundStatus = *req.RoundStatus
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(jobID, userID uint) error {
	job, err := s.findOwned(jobID, userID)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}

// findOwned scopes the lookup to the caller, so a job that exists but
// belongs to someone else is indistinguishable from a missing one.
func (s *JobService) findOwned(jobID, userID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND user_id = ?", jobID, userID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}
