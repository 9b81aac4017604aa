package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/specification"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/pkg/embedding"
	"idea-forge-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedIdeaMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // invalid payloads never become valid, don't retry
		return
	}

	log.Printf("[INFO] Processing idea embedding for IdeaId: %s", payload.IdeaId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	idea, err := uow.IdeaRepository().FindOne(ctx, specification.ByID{ID: payload.IdeaId})
	if err != nil {
		log.Printf("[ERROR] Failed to get idea %s: %v", payload.IdeaId, err)
		msg.Nack()
		return
	}
	if idea == nil {
		log.Printf("[ERROR] Idea not found: %s", payload.IdeaId)
		msg.Ack() // deleted before the worker got to it
		return
	}

	content := fmt.Sprintf(`Idea Title: %s

Objective: %s

Problem: %s

Scope: %s

Competition: %s

Monetization: %s`,
		idea.Title,
		idea.Objective,
		idea.Problem,
		idea.Scope,
		idea.ValidateCompetition,
		idea.ValidateMonetization,
	)

	// ChunkSize 1500 chars with 200 overlap keeps each chunk well under the
	// embedding model's input window.
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.IdeaEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of idea %s: %v", i, payload.IdeaId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.IdeaEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			IdeaId:         idea.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.IdeaEmbeddingRepository().DeleteByIdeaId(ctx, idea.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.IdeaEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Idea processed: %d chunks for IdeaId: %s", len(newEmbeddings), payload.IdeaId)
	msg.Ack()
}
