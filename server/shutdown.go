/******************************************************************************
 *
 *  Description :
 *
 *  Graceful shutdown of the Controller
 *
 *****************************************************************************/

package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
)

// signalHandler returns a context that's canceled the first time the process
// receives a termination signal. It is built on signal.NotifyContext and
// adds one log line when the signal arrives; which signal it was is not
// recorded.
func signalHandler() context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-ctx.Done()
		log.Printf("controller: shutdown signal received, draining")
		stop()
	}()

	return ctx
}

// serveUntilSignal runs srv.Serve(lis) until either it returns on its own or
// stop is canceled. On a signal it stops accepting new connections and lets
// in-flight RPCs drain via GracefulStop before calling drain. main passes a
// drain that cancels the Controller's own session-renewal task; the stores'
// sweeper goroutines are stopped afterwards by main's deferred Closer.
func serveUntilSignal(srv *grpc.Server, lis net.Listener, stop context.Context, drain func()) error {
	servedone := make(chan error, 1)
	go func() {
		servedone <- srv.Serve(lis)
	}()

	select {
	case <-stop.Done():
		srv.GracefulStop()
		<-servedone
		drain()
		return nil
	case err := <-servedone:
		drain()
		return err
	}
}
