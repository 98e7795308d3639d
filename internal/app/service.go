package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"github.com/everbuy/internal/logger"

	"go.uber.org/zap"
)

const defaultStopTimeout = 10 * time.Second

// Service 服务接口
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ShutdownHook 所有服务停止后执行的清理（关闭 Redis / 队列连接等）
type ShutdownHook func() error

// Runner 服务运行器：任一服务退出即整体停机
type Runner struct {
	services []Service
	hooks    []ShutdownHook
}

type serviceExit struct {
	name string
	err  error
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// OnShutdown 注册停机清理，按注册顺序执行
func (r *Runner) OnShutdown(hook ShutdownHook) *Runner {
	if hook != nil {
		r.hooks = append(r.hooks, hook)
	}
	return r
}

// Names 已注册服务名称
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.services))
	for _, svc := range r.services {
		if svc != nil {
			names = append(names, svc.Name())
		}
	}
	return names
}

// RunWithOptions 运行服务并处理系统信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务，等待信号或首个服务退出，然后逆序停止并执行清理
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = logger.S()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exits := make(chan serviceExit, len(r.services))
	for _, svc := range r.services {
		go func(service Service) {
			if service == nil {
				exits <- serviceExit{name: "unknown", err: errors.New("service is nil")}
				return
			}
			name := service.Name()
			log.Infow("service_start", "service", name)
			exits <- serviceExit{name: name, err: service.Start(ctx)}
		}(svc)
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
		log.Infow("runner_shutdown", "reason", "signal")
	case exit := <-exits:
		runErr = exit.err
		if exit.err != nil {
			log.Errorw("service_failed", "service", exit.name, "error", exit.err)
		} else {
			log.Infow("service_exit", "service", exit.name)
		}
		log.Infow("runner_shutdown", "reason", "service_exit", "service", exit.name)
	}

	cancel()
	if stopTimeout <= 0 {
		stopTimeout = defaultStopTimeout
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	for i := len(r.services) - 1; i >= 0; i-- {
		svc := r.services[i]
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
	for _, hook := range r.hooks {
		if err := hook(); err != nil {
			log.Warnw("runner_shutdown_hook_failed", "error", err)
		}
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
