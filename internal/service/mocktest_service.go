package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prep-service/internal/generator"
	"prep-service/internal/models"
	"prep-service/internal/repository"
	"prep-service/internal/scoring"
	"prep-service/internal/selection"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientScoreData is a client-precomputed score summary. It is only
// honored for a custom test whose ephemeral record has already expired;
// while the record exists the server recomputes.
type ClientScoreData struct {
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
}

type MockTestService struct {
	Repo         *repository.MockTestRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	Leaderboard  *LeaderboardService
	Generator    *generator.Client

	selector *selection.Selector
	scheme   scoring.MarkingScheme

	// scoreWeight is the fraction of the percentage credited to the
	// user's cumulative score; mock tests weigh less than quizzes so
	// grinding them cannot dominate the leaderboard.
	scoreWeight float64
}

func NewMockTestService(
	repo *repository.MockTestRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
	leaderboard *LeaderboardService,
	gen *generator.Client,
	scheme scoring.MarkingScheme,
	scoreWeight float64,
) *MockTestService {
	return &MockTestService{
		Repo:         repo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		Leaderboard:  leaderboard,
		Generator:    gen,
		selector:     selection.NewSelector(),
		scheme:       scheme,
		scoreWeight:  scoreWeight,
	}
}

func (s *MockTestService) ListTests(ctx context.Context, difficulty string) ([]models.MockTest, error) {
	return s.Repo.FindAll(ctx, difficulty)
}

func (s *MockTestService) GetTest(ctx context.Context, id string) (*models.MockTest, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *MockTestService) CreateTest(ctx context.Context, test *models.MockTest) error {
	if test.QuestionCount() == 0 {
		return fmt.Errorf("test has no questions")
	}
	s.fillDerivedMarks(test)
	for si, section := range test.Sections {
		for qi := range section.Questions {
			if !section.Questions[qi].HasValidCorrectOption() {
				return fmt.Errorf("section %d question %d has an invalid correct option", si, qi)
			}
		}
	}
	return s.Repo.Create(ctx, test)
}

func (s *MockTestService) DeleteTest(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// fillDerivedMarks computes section and test totals from the questions'
// resolved marks. Totals are fixed at authoring time.
func (s *MockTestService) fillDerivedMarks(test *models.MockTest) {
	total := 0.0
	for i := range test.Sections {
		sectionTotal := 0.0
		for qi := range test.Sections[i].Questions {
			sectionTotal += test.Sections[i].Questions[qi].MarksValue(s.scheme.CorrectMarks)
		}
		test.Sections[i].TotalMarks = sectionTotal
		total += sectionTotal
	}
	test.TotalMarks = total
}

// GenerateTest builds a full mock test with AI-authored sections.
func (s *MockTestService) GenerateTest(ctx context.Context, title, topic, difficulty string, sectionTitles []string, questionsPerSection int) (*models.MockTest, error) {
	sections := make([]models.Section, 0, len(sectionTitles))
	for _, sectionTitle := range sectionTitles {
		questions, err := generator.GenerateSectionQuestions(ctx, s.Generator, sectionTitle, topic, difficulty, questionsPerSection)
		if err != nil {
			return nil, err
		}
		sections = append(sections, models.Section{Title: sectionTitle, Questions: questions})
	}

	test := &models.MockTest{
		Title:       title,
		Description: fmt.Sprintf("AI-generated mock test on %s", topic),
		Sections:    sections,
		Difficulty:  difficulty,
		AIGenerated: true,
	}
	s.fillDerivedMarks(test)

	if err := s.Repo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to save generated test: %w", err)
	}
	return test, nil
}

// AssembleCustomTest builds an ephemeral test from the question bank and
// persists it with a TTL, so the submission can be scored server-side like
// any other test.
func (s *MockTestService) AssembleCustomTest(ctx context.Context, title string, specs []selection.SectionSpec, durationMinutes int) (*models.MockTest, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one section is required")
	}

	sections := make([]models.Section, 0, len(specs))
	for _, spec := range specs {
		pool, err := s.QuestionRepo.FindByTopic(ctx, spec.Topic, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load question pool for %q: %w", spec.Topic, err)
		}

		result := s.selector.Select(pool, selection.Criteria{
			Topic:      spec.Topic,
			Difficulty: spec.Difficulty,
			Count:      spec.Count,
		})
		if len(result.Questions) == 0 {
			return nil, fmt.Errorf("no questions available for topic %q", spec.Topic)
		}
		sections = append(sections, models.Section{Title: spec.Title, Questions: result.Questions})
	}

	test := &models.MockTest{
		Title:           title,
		Sections:        sections,
		DurationMinutes: durationMinutes,
	}
	s.fillDerivedMarks(test)

	if err := s.Repo.CreateEphemeral(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to save custom test: %w", err)
	}
	return test, nil
}

// Submit scores a mock-test submission and applies the side effects. The
// attempt stores the raw score, negative or not; only the percentage is
// floored. When the side-effect phase fails the report is still returned
// with the error.
func (s *MockTestService) Submit(ctx context.Context, testID, userID string, answers [][]*int, timeTakenSeconds int, clientScore *ClientScoreData) (*scoring.Report, error) {
	test, err := s.Repo.FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) && strings.HasPrefix(testID, repository.CustomTestIDPrefix) && clientScore != nil {
			// The ephemeral record has expired; the client summary is
			// the only score information left.
			return s.submitFromClientScore(ctx, testID, userID, timeTakenSeconds, clientScore)
		}
		return nil, err
	}

	report := scoring.EvaluateMockTest(test.Sections, answers, s.scheme)

	attempt := models.MockTestAttempt{
		TestID:           testID,
		Title:            test.Title,
		Score:            report.Score,
		Percentage:       report.Percentage,
		CorrectAnswers:   report.CorrectAnswers,
		TotalQuestions:   report.TotalQuestions,
		TimeTakenSeconds: timeTakenSeconds,
		AttemptedAt:      time.Now(),
	}

	if err := s.applyAttempt(ctx, userID, attempt); err != nil {
		return report, err
	}
	if !test.Ephemeral {
		if err := s.Repo.RecordAttempt(ctx, testID, report.Percentage); err != nil {
			return report, fmt.Errorf("failed to update test statistics: %w", err)
		}
	}

	return report, nil
}

func (s *MockTestService) submitFromClientScore(ctx context.Context, testID, userID string, timeTakenSeconds int, clientScore *ClientScoreData) (*scoring.Report, error) {
	report := &scoring.Report{
		Score:          clientScore.Score,
		Percentage:     clientScore.Percentage,
		CorrectAnswers: clientScore.CorrectAnswers,
		TotalQuestions: clientScore.TotalQuestions,
	}
	if report.Percentage < 0 {
		report.Percentage = 0
	}

	attempt := models.MockTestAttempt{
		TestID:           testID,
		Score:            report.Score,
		Percentage:       report.Percentage,
		CorrectAnswers:   report.CorrectAnswers,
		TotalQuestions:   report.TotalQuestions,
		TimeTakenSeconds: timeTakenSeconds,
		AttemptedAt:      time.Now(),
	}

	if err := s.applyAttempt(ctx, userID, attempt); err != nil {
		return report, err
	}
	return report, nil
}

func (s *MockTestService) applyAttempt(ctx context.Context, userID string, attempt models.MockTestAttempt) error {
	if _, err := s.UserRepo.FindOrCreate(ctx, userID); err != nil {
		return fmt.Errorf("failed to load user progress: %w", err)
	}

	credit := attempt.Percentage * s.scoreWeight
	if err := s.UserRepo.AppendMockTestAttempt(ctx, userID, attempt, credit); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	s.Leaderboard.Credit(ctx, userID, credit)
	return nil
}
