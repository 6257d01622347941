package controllers

import (
	"context"
	"errors"
	"sync"
	"time"

	"HostelHub/models"
	"HostelHub/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errStoreDown = errors.New("server selection timeout")

// memStore is an in-memory stand-in for the Mongo repositories. Guarded
// inserts hold the lock across check and insert, like a unique index.
type memStore struct {
	lock     sync.RWMutex
	users    []models.User
	meals    map[primitive.ObjectID]models.Meal
	likes    []models.Like
	requests []models.RequestedMeal
	reviews  []models.Review
	err      error
}

func newMemStore() *memStore {
	return &memStore{meals: make(map[primitive.ObjectID]models.Meal)}
}

func inserted(id primitive.ObjectID) *mongo.InsertOneResult {
	return &mongo.InsertOneResult{InsertedID: id}
}

// users

type memUsers struct{ *memStore }

func (s memUsers) Create(_ context.Context, user models.User) (*mongo.InsertOneResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, repository.ErrAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	user.Role = models.RoleUser
	s.users = append(s.users, user)
	return inserted(user.ID), nil
}

func (s memUsers) List(context.Context) ([]models.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.User{}, s.users...), nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s memUsers) PromoteToAdmin(_ context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i, u := range s.users {
		if u.ID == oid {
			res := &mongo.UpdateResult{MatchedCount: 1}
			if u.Role != models.RoleAdmin {
				s.users[i].Role = models.RoleAdmin
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

// seedUser stores a user with the given role directly.
func (s *memStore) seedUser(email, role string) models.User {
	s.lock.Lock()
	defer s.lock.Unlock()
	u := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	s.users = append(s.users, u)
	return u
}

// meals

type memMeals struct{ *memStore }

func (s memMeals) List(context.Context) ([]models.Meal, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	meals := []models.Meal{}
	for _, m := range s.meals {
		meals = append(meals, m)
	}
	return meals, nil
}

func (s memMeals) FindByID(_ context.Context, id string) (*models.Meal, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	m, ok := s.meals[oid]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s memMeals) Create(_ context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	meal.ID = primitive.NewObjectID()
	s.meals[meal.ID] = meal
	return inserted(meal.ID), nil
}

func (s memMeals) Replace(_ context.Context, id string, meal models.Meal) (*mongo.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.meals[oid]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	meal.ID = oid
	s.meals[oid] = meal
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s memMeals) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.meals[oid]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(s.meals, oid)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// likes

type memLikes struct{ *memStore }

func (s memLikes) Create(_ context.Context, like *models.Like) (*mongo.InsertOneResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, l := range s.likes {
		if l.MealTitle == like.MealTitle && l.UserEmail == like.UserEmail {
			return nil, repository.ErrAlreadyExists
		}
	}
	like.ID = primitive.NewObjectID()
	s.likes = append(s.likes, *like)
	return inserted(like.ID), nil
}

func (s memLikes) List(context.Context) ([]models.Like, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Like{}, s.likes...), nil
}

// requested meals

type memRequests struct{ *memStore }

func (s memRequests) Create(_ context.Context, req *models.RequestedMeal) (*mongo.InsertOneResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.requests {
		if r.MealTitle == req.MealTitle && r.UserEmail == req.UserEmail {
			return nil, repository.ErrAlreadyExists
		}
	}
	req.ID = primitive.NewObjectID()
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	s.requests = append(s.requests, *req)
	return inserted(req.ID), nil
}

func (s memRequests) List(context.Context) ([]models.RequestedMeal, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.RequestedMeal{}, s.requests...), nil
}

// reviews

type memReviews struct{ *memStore }

func (s memReviews) Create(_ context.Context, review *models.Review) (*mongo.InsertOneResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)
	return inserted(review.ID), nil
}

func (s memReviews) List(context.Context) ([]models.Review, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Review{}, s.reviews...), nil
}

func (s memReviews) ListByEmail(_ context.Context, email string) ([]models.Review, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Review{}
	for _, r := range s.reviews {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s memReviews) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i, r := range s.reviews {
		if r.ID == oid {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

// recordingPublisher keeps published event types and payloads.
type recordingPublisher struct {
	lock     sync.Mutex
	types    []string
	payloads []interface{}
	err      error
	closed   bool
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, data interface{}) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.types = append(p.types, eventType)
	p.payloads = append(p.payloads, data)
	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func (p *recordingPublisher) published() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string{}, p.types...)
}

// payload returns the data of the i-th published event.
func (p *recordingPublisher) payload(i int) interface{} {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.payloads[i]
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
