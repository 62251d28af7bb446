package seqhash

// SeedStride spaces the seeds of successive workers.
const SeedStride = 4

// Task is one independent hash computation.
type Task struct {
	Value int64 `json:"value"`
	Seed  int64 `json:"seed"`
}

// PlanTasks returns n tasks over the same value, task i
// seeded with i*SeedStride.
func PlanTasks(value int64, n int) (tasks []Task) {
	for i := 0; i < n; i++ {
		tasks = append(tasks, Task{Value: value, Seed: int64(i) * SeedStride})
	}
	return
}
