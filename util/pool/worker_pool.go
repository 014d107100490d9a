package pool

import (
	"context"
	"sync"
)

// Task 表示一个工作任务
type Task func()

// WorkerPool 工作池结构体
// 用于图标下载这类"提交后尽力完成、取消时不再派发"的批量任务
type WorkerPool struct {
	maxWorkers int
	taskQueue  chan Task
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	closeOnce  sync.Once
}

// NewWorkerPool 创建一个新的工作池
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		maxWorkers: maxWorkers,
		taskQueue:  make(chan Task, maxWorkers*2), // 任务队列大小为工作者数量的2倍
		ctx:        ctx,
		cancel:     cancel,
	}

	// 启动工作者
	pool.startWorkers()

	return pool
}

// startWorkers 启动工作者协程
func (p *WorkerPool) startWorkers() {
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()

			for {
				select {
				case task, ok := <-p.taskQueue:
					if !ok {
						return
					}
					// 取消后不再开始新任务
					select {
					case <-p.ctx.Done():
						return
					default:
					}
					task()

				case <-p.ctx.Done():
					return
				}
			}
		}()
	}
}

// Submit 提交一个任务到工作池
// 取消后提交的任务被丢弃；队列满时阻塞，但取消能把它唤醒
func (p *WorkerPool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
		return
	default:
	}

	select {
	case p.taskQueue <- task:
	case <-p.ctx.Done():
	}
}

// Wait 关闭任务队列并等待所有已提交任务执行完成
func (p *WorkerPool) Wait() {
	p.closeOnce.Do(func() {
		close(p.taskQueue)
	})
	p.wg.Wait()
	p.cancel()
}

// Abandon 放弃尚未开始的任务，等已经在执行中的任务自行结束后返回
// 返回之后不会再有任务在运行，调用方可以安全地复用任务涉及的资源
func (p *WorkerPool) Abandon() {
	p.cancel()
	p.wg.Wait()
}
