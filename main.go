package main

import (
	"log"
	"time"

	"prep-service/internal/config"
	"prep-service/internal/db"
	"prep-service/internal/event"
	"prep-service/internal/generator"
	"prep-service/internal/handlers"
	"prep-service/internal/repository"
	"prep-service/internal/scoring"
	"prep-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Redis leaderboard cache
	var redisClient *redis.Client
	if cfg.RedisAddress != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	} else {
		log.Println("Redis not configured, leaderboard served from MongoDB")
	}

	llmClient := generator.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	mockTestRepo := repository.NewMockTestRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	topicRepo := repository.NewTopicRepository(database)
	flashcardRepo := repository.NewFlashcardRepository(database)
	interviewRepo := repository.NewInterviewRepository(database)
	resumeRepo := repository.NewResumeRepository(database)

	// Services
	leaderboardService := service.NewLeaderboardService(userRepo, redisClient)
	quizService := service.NewQuizService(quizRepo, userRepo, leaderboardService, llmClient)
	mockTestService := service.NewMockTestService(
		mockTestRepo,
		questionRepo,
		userRepo,
		leaderboardService,
		llmClient,
		scoring.MarkingScheme{
			CorrectMarks:  cfg.MockTestCorrectMarks,
			NegativeMarks: cfg.MockTestNegativeMarks,
		},
		cfg.MockTestScoreWeight,
	)
	topicService := service.NewTopicService(topicRepo, userRepo)
	flashcardService := service.NewFlashcardService(flashcardRepo, llmClient)
	interviewService := service.NewInterviewService(interviewRepo, llmClient)
	resumeService := service.NewResumeService(resumeRepo, llmClient)
	progressService := service.NewProgressService(userRepo)

	// Handlers
	quizHandler := handlers.NewQuizHandler(quizService)
	mockTestHandler := handlers.NewMockTestHandler(mockTestService)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	topicHandler := handlers.NewTopicHandler(topicService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Public routes: browse content without an identity.
	publicQuiz := r.Group("/public/prep/quiz")
	{
		publicQuiz.GET("/", quizHandler.ListQuizzes)
		publicQuiz.GET("/:id", quizHandler.GetQuiz)
	}

	publicTest := r.Group("/public/prep/mocktest")
	{
		publicTest.GET("/", mockTestHandler.ListTests)
		publicTest.GET("/:id", mockTestHandler.GetTest)
	}

	publicTopic := r.Group("/public/prep/topic")
	{
		publicTopic.GET("/today", topicHandler.TodayTopics)
		publicTopic.GET("/subject/:subject", topicHandler.TopicsBySubject)
		publicTopic.GET("/:id", topicHandler.GetTopic)
	}

	publicFlashcard := r.Group("/public/prep/flashcard")
	{
		publicFlashcard.GET("/", flashcardHandler.ListDecks)
		publicFlashcard.GET("/:id", flashcardHandler.GetDeck)
	}

	publicInterview := r.Group("/public/prep/interview")
	{
		publicInterview.GET("/", interviewHandler.ListSets)
		publicInterview.GET("/:id", interviewHandler.GetSet)
	}

	r.GET("/public/prep/leaderboard", leaderboardHandler.Top)

	// Protected routes: submissions, generation and anything that writes
	// on behalf of a user.
	protected := r.Group("/protected/prep", handlers.RequireUser(cfg.JWTSecret))

	protectedQuiz := protected.Group("/quiz")
	{
		protectedQuiz.POST("/", quizHandler.CreateQuiz)
		protectedQuiz.DELETE("/:id", quizHandler.DeleteQuiz)
		protectedQuiz.POST("/generate", quizHandler.GenerateQuiz)
		protectedQuiz.POST("/:id/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("prep.quiz.submitted", gin.H{
					"quiz_id":   c.Param("id"),
					"user_id":   handlers.CurrentUser(c),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedTest := protected.Group("/mocktest")
	{
		protectedTest.POST("/", mockTestHandler.CreateTest)
		protectedTest.DELETE("/:id", mockTestHandler.DeleteTest)
		protectedTest.POST("/generate", mockTestHandler.GenerateTest)
		protectedTest.POST("/custom", mockTestHandler.AssembleCustomTest)
		protectedTest.POST("/:id/submit", func(c *gin.Context) {
			mockTestHandler.SubmitTest(c)
			if publisher != nil {
				publisher.Publish("prep.mocktest.submitted", gin.H{
					"test_id":   c.Param("id"),
					"user_id":   handlers.CurrentUser(c),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedQuestion := protected.Group("/question")
	{
		protectedQuestion.GET("/", questionHandler.ListQuestions)
		protectedQuestion.GET("/:id", questionHandler.GetQuestion)
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.POST("/bulk", questionHandler.CreateQuestions)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	protectedTopic := protected.Group("/topic")
	{
		protectedTopic.POST("/", topicHandler.CreateTopic)
		protectedTopic.POST("/:id/complete", func(c *gin.Context) {
			topicHandler.CompleteTopic(c)
			if publisher != nil {
				publisher.Publish("prep.topic.completed", gin.H{
					"topic_id":  c.Param("id"),
					"user_id":   handlers.CurrentUser(c),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedFlashcard := protected.Group("/flashcard")
	{
		protectedFlashcard.POST("/", flashcardHandler.CreateDeck)
		protectedFlashcard.DELETE("/:id", flashcardHandler.DeleteDeck)
		protectedFlashcard.POST("/generate", flashcardHandler.GenerateDeck)
		protectedFlashcard.POST("/:id/review", flashcardHandler.ReviewCard)
		protectedFlashcard.GET("/due", flashcardHandler.DueReviews)
	}

	protectedInterview := protected.Group("/interview")
	{
		protectedInterview.POST("/generate", interviewHandler.GenerateSet)
	}

	protectedResume := protected.Group("/resume")
	{
		protectedResume.GET("/", resumeHandler.ListResumes)
		protectedResume.GET("/:id", resumeHandler.GetResume)
		protectedResume.POST("/", resumeHandler.CreateResume)
		protectedResume.PUT("/:id", resumeHandler.UpdateResume)
		protectedResume.DELETE("/:id", resumeHandler.DeleteResume)
		protectedResume.POST("/:id/review", resumeHandler.ReviewResume)
	}

	protected.GET("/progress", progressHandler.GetProgress)

	r.Run(":" + cfg.Port)
}
