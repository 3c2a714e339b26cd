package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	optimizingmocks "github.com/adnova/ads-autopilot-api/internal/usecases/optimizing/mocks"
)

func TestOptimizationCycleService_runOptimizationCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	service := &OptimizationCycleService{
		config: OptimizationCycleConfig{
			RecentSampleDays: 7,
			MinSamples:       3,
			CycleEnabled:     true,
		},
		optimizer: mockOptimizer,
	}

	mockOptimizer.EXPECT().OptimizeAllCampaigns(gomock.Any()).Return(nil)

	service.runOptimizationCycle()

	assert.False(t, service.cycleRunning)
	assert.False(t, service.lastCycleStartedAt.IsZero())
	assert.False(t, service.lastCycleCompletedAt.IsZero())
}

func TestOptimizationCycleService_runOptimizationCycle_ErroNoCiclo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	service := &OptimizationCycleService{
		config:    OptimizationCycleConfig{CycleEnabled: true},
		optimizer: mockOptimizer,
	}

	mockOptimizer.EXPECT().OptimizeAllCampaigns(gomock.Any()).Return(assert.AnError)

	service.runOptimizationCycle()

	// O erro é registrado e o horário de conclusão não é atualizado
	assert.False(t, service.cycleRunning)
	assert.True(t, service.lastCycleCompletedAt.IsZero())
}

func TestOptimizationCycleService_runOptimizationCycle_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	service := &OptimizationCycleService{
		config:       OptimizationCycleConfig{CycleEnabled: true},
		optimizer:    mockOptimizer,
		cycleRunning: true,
	}

	// Nenhum ciclo deve ser disparado com outro em andamento
	service.runOptimizationCycle()

	assert.True(t, service.cycleRunning)
}

func TestOptimizationCycleService_GetStatus_ComCicloEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	service := &OptimizationCycleService{
		config: OptimizationCycleConfig{
			CronSchedule: "0 */6 * * *",
			CycleEnabled: true,
		},
		optimizer: mockOptimizer,
	}

	release := make(chan struct{})
	mockOptimizer.EXPECT().OptimizeAllCampaigns(gomock.Any()).DoAndReturn(func(_ context.Context) error {
		<-release
		return nil
	})

	done := make(chan struct{})
	go func() {
		service.runOptimizationCycle()
		close(done)
	}()

	// O status deve poder ser consultado com o ciclo ainda em andamento
	assert.Eventually(t, func() bool {
		startedAt, _ := service.GetStatus()["last_cycle_started_at"].(time.Time)
		return !startedAt.IsZero()
	}, time.Second, 10*time.Millisecond)

	close(release)
	<-done

	status := service.GetStatus()
	completedAt, _ := status["last_cycle_completed_at"].(time.Time)
	assert.False(t, completedAt.IsZero())
}
