package selection

import (
	"math/rand"
	"strings"
	"time"

	"prep-service/internal/models"
)

// Selector performs weighted random selection from a question pool.
// Questions whose topic matches the criteria exactly outweigh loose
// matches, and matching difficulty adds a further boost, so assembled tests
// stay on-topic even over a mixed bank.
type Selector struct {
	rand *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select picks up to criteria.Count questions from the pool. When the
// difficulty filter leaves too few candidates it is relaxed rather than
// returning a short section.
func (s *Selector) Select(pool []models.Question, criteria Criteria) *Result {
	weighted := s.calculateWeights(pool, criteria, true)
	if len(weighted) < criteria.Count {
		weighted = s.calculateWeights(pool, criteria, false)
	}

	selected := s.weightedRandomSelect(weighted, criteria.Count)

	questions := make([]models.Question, len(selected))
	for i, wq := range selected {
		questions[i] = wq.Question
	}
	return &Result{
		Questions:       questions,
		TotalCandidates: len(weighted),
	}
}

func (s *Selector) calculateWeights(pool []models.Question, criteria Criteria, strictDifficulty bool) []WeightedQuestion {
	excluded := make(map[string]bool, len(criteria.ExcludeIDs))
	for _, id := range criteria.ExcludeIDs {
		excluded[id] = true
	}

	weighted := make([]WeightedQuestion, 0, len(pool))
	for _, question := range pool {
		if excluded[question.ID] {
			continue
		}
		if strictDifficulty && criteria.Difficulty != "" && question.Difficulty != criteria.Difficulty {
			continue
		}

		weight := 1.0
		if strings.EqualFold(question.Topic, criteria.Topic) {
			weight *= 4
		} else if criteria.Topic != "" && strings.Contains(strings.ToLower(question.Topic), strings.ToLower(criteria.Topic)) {
			weight *= 2
		}
		if criteria.Difficulty != "" && question.Difficulty == criteria.Difficulty {
			weight *= 2
		}

		weighted = append(weighted, WeightedQuestion{Question: question, Weight: weight})
	}
	return weighted
}

// weightedRandomSelect draws count questions without replacement,
// proportionally to their weights.
func (s *Selector) weightedRandomSelect(candidates []WeightedQuestion, count int) []WeightedQuestion {
	if len(candidates) <= count {
		return candidates
	}

	selected := make([]WeightedQuestion, 0, count)
	remaining := make([]WeightedQuestion, len(candidates))
	copy(remaining, candidates)

	for i := 0; i < count && len(remaining) > 0; i++ {
		totalWeight := 0.0
		for _, wq := range remaining {
			totalWeight += wq.Weight
		}

		if totalWeight == 0 {
			idx := s.rand.Intn(len(remaining))
			selected = append(selected, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			continue
		}

		r := s.rand.Float64() * totalWeight
		cumulative := 0.0
		for idx, wq := range remaining {
			cumulative += wq.Weight
			if r <= cumulative {
				selected = append(selected, wq)
				remaining = append(remaining[:idx], remaining[idx+1:]...)
				break
			}
		}
	}

	return selected
}
