package session

import (
	"context"
	"time"
)

// Run 按 SweepInterval 周期回收，直到 ctx 结束
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep(m.now())
		}
	}
}

// Sweeper 定时回收空闲会话的后台服务
type Sweeper struct {
	manager *Manager
}

// NewSweeper 创建回收服务
func NewSweeper(manager *Manager) *Sweeper {
	return &Sweeper{manager: manager}
}

// Name 服务名称
func (s *Sweeper) Name() string {
	return "session_sweeper"
}

// Start 启动服务
func (s *Sweeper) Start(ctx context.Context) error {
	if s == nil || s.manager == nil {
		<-ctx.Done()
		return nil
	}
	return s.manager.Run(ctx)
}

// Stop 停止服务
func (s *Sweeper) Stop(ctx context.Context) error {
	return nil
}
