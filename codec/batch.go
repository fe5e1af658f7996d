package codec

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/voxaline/trimesh-go/common"
	"github.com/voxaline/trimesh-go/mesh"
)

func (c *codec) DecodeFiles(paths []string) ([]mesh.TriMesh, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	workers := common.Coalesce(c.workers, runtime.NumCPU())
	pool := worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)

	// Each task writes only its own slot, so no locking is needed beyond the
	// WaitGroup; each mesh is built by exactly one goroutine.
	meshes := make([]mesh.TriMesh, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	wg.Add(len(paths))
	for i, path := range paths {
		slot := i
		p := path
		pool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := c.DecodeFile(p)
				if err != nil {
					errs[slot] = fmt.Errorf("%s: %w", p, err)
					return nil, err
				}
				meshes[slot] = m
				return m, nil
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return meshes, nil
}
