package services

import (
	"fmt"

	"credimatch/internal/models/db_models"
	"credimatch/internal/models/response_models"
	"credimatch/internal/quiz"
)

func mapQuestion(q db_models.QuizQuestion) (quiz.Question, error) {
	options := make([]quiz.Option, 0, len(q.Options))
	for _, o := range q.Options {
		icon, err := quiz.ParseIconTag(o.IconTag)
		if err != nil {
			return quiz.Question{}, fmt.Errorf("question %s option %s: %w", q.ID, o.ID, err)
		}
		options = append(options, quiz.Option{
			ID:          o.ID.String(),
			Label:       o.Label,
			Description: o.Description,
			Icon:        icon,
			Weights: quiz.WeightVector{
				Usage:        quiz.Usage(o.Usage),
				Budget:       quiz.BudgetBucket(o.Budget),
				Brand:        o.Brand,
				Condition:    quiz.Condition(o.Condition),
				GPU:          quiz.GPUClass(o.GPUClass),
				MinRAMGB:     o.MinRAMGB,
				MinStorageGB: o.MinStorageGB,
				RequireStock: o.RequireStock,
			},
		})
	}
	return quiz.Question{
		ID:      q.ID.String(),
		Prompt:  q.Prompt,
		Help:    q.HelpText,
		Options: options,
	}, nil
}

func mapProduct(p db_models.Product) quiz.Product {
	tags := make([]quiz.Usage, 0, len(p.UsageTags))
	for _, t := range p.UsageTags {
		tags = append(tags, quiz.Usage(t))
	}
	return quiz.Product{
		ID:            p.ID.String(),
		Brand:         p.Brand,
		Name:          p.Name,
		Price:         p.Price,
		MonthlyQuota:  p.MonthlyQuota,
		Processor:     p.Processor,
		RAMGB:         p.RAMGB,
		RAMType:       p.RAMType,
		StorageGB:     p.StorageGB,
		StorageType:   p.StorageType,
		GPU:           quiz.GPUClass(p.GPUClass),
		DisplayInches: p.DisplayInches,
		UsageTags:     tags,
		Condition:     quiz.Condition(p.Condition),
		InStock:       p.InStock,
		Images:        p.Images,
	}
}

func questionView(q quiz.Question) *response_models.QuestionView {
	options := make([]response_models.OptionView, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, response_models.OptionView{
			ID:          o.ID,
			Label:       o.Label,
			Description: o.Description,
			Icon:        string(o.Icon),
		})
	}
	return &response_models.QuestionView{
		ID:       q.ID,
		Prompt:   q.Prompt,
		HelpText: q.Help,
		Options:  options,
	}
}

func productView(p quiz.Product) response_models.ProductView {
	return response_models.ProductView{
		ID:            p.ID,
		Brand:         p.Brand,
		Name:          p.Name,
		Price:         p.Price,
		MonthlyQuota:  p.MonthlyQuota,
		Processor:     p.Processor,
		RAMGB:         p.RAMGB,
		RAMType:       p.RAMType,
		StorageGB:     p.StorageGB,
		StorageType:   p.StorageType,
		GPUClass:      string(p.GPU),
		DisplayInches: p.DisplayInches,
		Condition:     string(p.Condition),
		InStock:       p.InStock,
		Images:        p.Images,
	}
}

func productMatches(results []quiz.ScoredProduct) []response_models.ProductMatch {
	matches := make([]response_models.ProductMatch, 0, len(results))
	for _, r := range results {
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		matches = append(matches, response_models.ProductMatch{
			Product:    productView(r.Product),
			MatchScore: r.Score,
			Reasons:    reasons,
		})
	}
	return matches
}
