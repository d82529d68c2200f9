/******************************************************************************
 *
 *  Description :
 *
 *  Controller entry point: wires the Repository Layer, the domain managers,
 *  the gRPC services and TLS, then serves until a shutdown signal arrives.
 *
 *****************************************************************************/

package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/onionmesh/controller/pbx"
	"github.com/onionmesh/controller/server/store"
	"github.com/onionmesh/controller/server/store/adapter"
	t "github.com/onionmesh/controller/server/store/types"
)

const (
	version                = "0.1.0"
	sessionRenewalInterval = 2 * time.Second
	caCertFile             = "ca.crt"
	serverCertFile         = "server.crt"
	serverKeyFile          = "server.key"
)

func main() {
	logFile, err := setupLogging("controller")
	if err != nil {
		log.Fatalf("controller: failed to set up logging: %v", err)
	}
	defer logFile.Close()

	log.Printf("controller: starting, version %s", version)

	listenSettings, err := LoadControllerListenSettings()
	if err != nil {
		log.Fatalf("controller: %v", err)
	}
	creds, err := LoadCredentials()
	if err != nil {
		log.Fatalf("controller: %v", err)
	}

	stores, err := store.Open(adapter.RepositoryTypeFromEnv())
	if err != nil {
		log.Fatalf("controller: failed to open repository: %v", err)
	}
	defer stores.Closer()

	sessions := NewSessionManager(stores.Sessions)
	routes := NewRouteManager(stores.Routes)
	members := NewMembershipManager(stores.Members)

	if membersFile, ok := MembersCSVFile(); ok {
		if err := members.SeedMembersFromCSV(context.Background(), membersFile); err != nil {
			log.Fatalf("controller: failed to seed members: %v", err)
		}
	}

	renewalCtx, cancelRenewal := context.WithCancel(context.Background())
	go renewOwnSession(renewalCtx, sessions, creds, listenSettings)

	tlsConfig, err := loadServerTLS()
	if err != nil {
		cancelRenewal()
		log.Fatalf("controller: failed to load TLS identity: %v", err)
	}

	grpcServer := grpc.NewServer(grpc.Creds(credentials.NewTLS(tlsConfig)))
	pbx.RegisterAuthServiceServer(grpcServer, NewAuthServer(sessions, members))
	pbx.RegisterRouteServiceServer(grpcServer, NewRouteServer(sessions, routes))
	pbx.RegisterInfoServiceServer(grpcServer, NewInfoServer(sessions, version))

	lis, err := net.Listen("tcp", listenSettings.LocalAddress())
	if err != nil {
		cancelRenewal()
		log.Fatalf("controller: failed to listen on %s: %v", listenSettings.LocalAddress(), err)
	}
	log.Printf("controller: listening on %s, advertising %s", listenSettings.LocalAddress(), listenSettings.PublicAddress())

	stop := signalHandler()
	if err := serveUntilSignal(grpcServer, lis, stop, func() {
		cancelRenewal()
	}); err != nil {
		log.Fatalf("controller: server stopped: %v", err)
	}

	log.Printf("controller: shutdown complete")
}

// renewOwnSession records a Controller-kind session for this Controller in
// the session store on a fixed cadence, until ctx is canceled. Each write
// mints a new access key; earlier keys are left to expire.
func renewOwnSession(ctx context.Context, sessions *SessionManager, creds Credentials, listen ListenSettings) {
	var publicKey []byte
	if listen.CertFile != "" {
		if pem, err := os.ReadFile(certPath(listen.CertFile)); err == nil {
			publicKey = pem
		} else {
			log.Printf("controller: could not read advertised cert %s: %v", listen.CertFile, err)
		}
	}
	endpoint := t.Endpoint{IPAddress: listen.IP, Port: uint32(listen.Port), PublicKey: publicKey, DomainName: listen.DomainName}
	ticker := time.NewTicker(sessionRenewalInterval)
	defer ticker.Stop()

	for {
		if _, err := sessions.SetSession(ctx, t.KindController, creds.Uid, listen.PublicAddress(), endpoint); err != nil {
			log.Printf("controller: failed to renew own session: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// loadServerTLS builds the mutual-TLS config this Controller presents to
// its peers: its own certificate/key pair, plus the CA that peers' client
// certificates must chain to.
func loadServerTLS() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certPath(serverCertFile), certPath(serverKeyFile))
	if err != nil {
		return nil, err
	}

	caCert, err := os.ReadFile(certPath(caCertFile))
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, errInvalidCACert{path: certPath(caCertFile)}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
	}, nil
}

type errInvalidCACert struct {
	path string
}

func (e errInvalidCACert) Error() string {
	return "controller: could not parse CA certificate at " + e.path
}
