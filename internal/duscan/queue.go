package duscan

// queue is an unbounded FIFO between the traversal workers and the single
// aggregator. Producers must never block on the consumer, so a plain buffered
// channel is not enough: a pump goroutine spills any overflow into a slice.
//
// Send on in; receive from out. Closing in drains the backlog and then closes
// out, so the consumer can simply range over out.
type queue struct {
	in  chan message
	out chan message
}

func newQueue() *queue {
	q := &queue{
		in:  make(chan message, 128),
		out: make(chan message, 128),
	}
	go q.pump()

	return q
}

func (q *queue) pump() {
	defer close(q.out)

	var backlog []message

	for {
		if len(backlog) == 0 {
			msg, ok := <-q.in
			if !ok {
				return
			}
			backlog = append(backlog, msg)
		}

		select {
		case msg, ok := <-q.in:
			if !ok {
				for _, m := range backlog {
					q.out <- m
				}

				return
			}
			backlog = append(backlog, msg)
		case q.out <- backlog[0]:
			backlog = backlog[1:]
		}
	}
}
