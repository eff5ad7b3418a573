package elev

// run is the state manager goroutine. It is the only place elevator is touched.
func (l *Lift) run(elevator *ElevState) {
	for {
		select {
		case cmd := <-l.cmds:
			// select picks at random when both are ready; a closed lift must not run cmd.
			select {
			case <-l.quit:
				close(cmd.done)
				return
			default:
			}
			cmd.exec(elevator)
			close(cmd.done)
		case <-l.quit:
			return
		}
	}
}

// exec hands fn to the state manager and waits until it has been handled.
// After Close, fn is dropped.
func (l *Lift) exec(fn func(elevator *ElevState)) {
	cmd := elevStateCmd{exec: fn, done: make(chan struct{})}
	select {
	case l.cmds <- cmd:
	case <-l.quit:
		return
	}
	<-cmd.done
}
