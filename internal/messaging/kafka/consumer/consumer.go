package consumer

import (
	"context"
	"encoding/json"

	"go-hrm/internal/employee"
	"go-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeService employee.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// SeedOnboardingTask is idempotent, so replays of the same event are
		// harmless.
		if err := employeeService.SeedOnboardingTask(ctx, event.OwnerID, event.EmployeeID); err != nil {
			log.Error("seed onboarding task failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("owner_id", event.OwnerID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding task seeded from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("owner_id", event.OwnerID),
		)
	}
}
