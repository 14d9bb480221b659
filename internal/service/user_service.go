package service

import (
	"errors"

	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Activity *ActivityService
}

func NewUserService(userRepo *repository.UserRepository, activity *ActivityService) *UserService {
	return &UserService{UserRepo: userRepo, Activity: activity}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List(role model.UserRole, search string, page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.List(role, search, page, limit)
}

// CreateUser 管理端建号，直接approved，不走自注册审批
func (s *UserService) CreateUser(actorID uint, user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.Status = model.StatusApproved

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}
	s.Activity.Record(actorID, "user.create", user.Email, string(user.Role))
	return nil
}

func (s *UserService) UpdateUser(actorID uint, user *model.User) error {
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}
	s.Activity.Record(actorID, "user.update", user.Email, "")
	return nil
}

func (s *UserService) SetStatus(actorID, userID uint, status model.AccountStatus) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdateStatus(userID, status); err != nil {
		return err
	}
	s.Activity.Record(actorID, "user."+string(status), user.Email, "")
	return nil
}

func (s *UserService) DeleteUser(actorID, userID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if err := s.UserRepo.Delete(userID); err != nil {
		return err
	}
	s.Activity.Record(actorID, "user.delete", user.Email, "")
	return nil
}

// LinkedStudent 家长端解析关联学生，未绑定时报错
func (s *UserService) LinkedStudent(parentID uint) (*model.User, error) {
	parent, err := s.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent.ChildID == nil {
		return nil, util.ErrNoLinkedStudent
	}
	student, err := s.GetByID(*parent.ChildID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}
	return student, nil
}

func (s *UserService) UpdateAvatar(userID uint, url string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	user.Avatar = url
	return s.UserRepo.Update(user)
}
