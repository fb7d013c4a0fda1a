package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <userId> <moduleName>",
	Short: "Write a synthetic practice session for development and demos",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, moduleName := args[0], args[1]
		questions, _ := cmd.Flags().GetInt("questions")
		accuracy, _ := cmd.Flags().GetFloat64("accuracy")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := engine.New(st.EventRepo(), st.PerformanceRepo(), st.ProgressRepo(), zap.NewNop())

		sessionID := uuid.NewString()
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		now := time.Now().Add(-time.Duration(questions) * 20 * time.Second)

		var events []telemetry.Event
		var entries []trend.LogEntry
		correct := 0

		for i := 0; i < questions; i++ {
			questionID := fmt.Sprintf("q%d", i+1)
			displayedAt := now.Add(time.Duration(i) * 20 * time.Second)
			displayMs := displayedAt.UnixMilli()
			reactionMs := int64(2000 + rng.Intn(6000))
			isCorrect := rng.Float64() < accuracy
			if isCorrect {
				correct++
			}

			choice := rng.Intn(4)
			hoverMs := int64(500 + rng.Intn(2000))
			events = append(events,
				telemetry.Event{
					UserID: userID, SessionID: sessionID, ModuleName: moduleName,
					QuestionID: questionID, Type: telemetry.TypeQuestionDisplayed,
					Payload:   telemetry.Payload{Timestamp: &displayMs},
					Timestamp: displayedAt,
				},
				telemetry.Event{
					UserID: userID, SessionID: sessionID, ModuleName: moduleName,
					QuestionID: questionID, Type: telemetry.TypeChoiceHoverStart,
					Payload:   telemetry.Payload{ChoiceIndex: &choice, HoverDuration: &hoverMs},
					Timestamp: displayedAt.Add(time.Duration(reactionMs/2) * time.Millisecond),
				},
				telemetry.Event{
					UserID: userID, SessionID: sessionID, ModuleName: moduleName,
					QuestionID: questionID, Type: telemetry.TypeAnswerSelected,
					Payload:   telemetry.Payload{ReactionTime: &reactionMs, IsCorrect: &isCorrect},
					Timestamp: displayedAt.Add(time.Duration(reactionMs) * time.Millisecond),
				},
			)

			entries = append(entries, trend.LogEntry{
				UserID:          userID,
				ModuleName:      moduleName,
				SessionID:       sessionID,
				QuestionType:    "multiple-choice",
				IsCorrect:       isCorrect,
				ResponseTimeMs:  reactionMs,
				DifficultyLevel: difficulty.Easy,
				ConceptTags:     []string{moduleName},
				Timestamp:       displayedAt.Add(time.Duration(reactionMs) * time.Millisecond),
			})
		}

		stored, skipped, err := svc.IngestEvents(ctx, events)
		if err != nil {
			return fmt.Errorf("write events: %w", err)
		}

		rec, err := svc.RecordSession(ctx, userID, moduleName, mastery.SessionSummary{
			Correct:               correct,
			Total:                 questions,
			AverageResponseTimeMs: 5000,
			Difficulty:            difficulty.Easy,
			TimeSpentSecs:         questions * 20,
		}, entries)
		if err != nil {
			return fmt.Errorf("record session: %w", err)
		}

		fmt.Printf("Session %s: %d events stored (%d skipped), %d/%d correct\n",
			sessionID, stored, skipped, correct, questions)
		fmt.Printf("Progress: %s at %d%% accuracy over %d sessions\n",
			rec.MasteryLevel, rec.AccuracyPct, rec.CompletedSessions)
		return nil
	},
}

func init() {
	simulateCmd.Flags().Int("questions", 10, "Number of questions in the synthetic session")
	simulateCmd.Flags().Float64("accuracy", 0.7, "Probability of a correct answer")
}
