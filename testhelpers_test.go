//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/eatwithchiso/service-booking/internal/adapter"
	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/database"
	"github.com/eatwithchiso/service-booking/internal/common/kafka"
	bookingEvents "github.com/eatwithchiso/service-booking/internal/events"
	"github.com/eatwithchiso/service-booking/internal/kv"
	"github.com/eatwithchiso/service-booking/internal/repository"
)

// startContainer starts a generic container and returns host:port for exposed.
func startContainer(t *testing.T, req testcontainers.ContainerRequest, exposed string) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s container", req.Image)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate %s container: %v", req.Image, err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port(exposed))
	require.NoError(t, err)
	return net.JoinHostPort(host, port.Port())
}

// setupPostgresStore starts PostgreSQL and returns a migrated kv store.
func setupPostgresStore(t *testing.T) *kv.PostgresStore {
	t.Helper()
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_booking",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432")

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	var store *kv.PostgresStore
	require.Eventually(t, func() bool {
		db, err := database.Connect(database.PostgresConfig{
			Host: host, Port: port, User: "test", Password: "test",
			DBName: "test_booking", SSLMode: "disable",
		}, zap.NewNop())
		if err != nil {
			return false
		}
		store = kv.NewPostgresStore(db)
		return true
	}, 30*time.Second, time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupRedisStore starts Redis and returns a connected kv store.
func setupRedisStore(t *testing.T) *kv.RedisStore {
	t.Helper()
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}, "6379")

	store, err := kv.NewRedisStore(context.Background(), kv.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupMongoStore starts MongoDB and returns a connected kv store.
func setupMongoStore(t *testing.T) *kv.MongoStore {
	t.Helper()
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	}, "27017")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := kv.NewMongoStore(ctx, "mongodb://"+addr, "test_booking")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupKafka starts Kafka (KRaft) and pre-creates the booking topics.
func setupKafka(t *testing.T) []string {
	t.Helper()
	ctx := context.Background()

	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")
	t.Cleanup(func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, brokers, bookingEvents.TopicBookingEvents, bookingEvents.TopicBookingCommands)
	return brokers
}

// bookingStack holds wired-up booking service components.
type bookingStack struct {
	Service  *application.BookingService
	Consumer *bookingEvents.BookingCommandConsumer
}

// setupBookingStack wires the booking service over store and, when brokers are
// given, Kafka publishing and command consumption.
func setupBookingStack(t *testing.T, store kv.Store, brokers []string) *bookingStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	var publisher application.EventPublisher = bookingEvents.NoopPublisher{}
	if len(brokers) > 0 {
		producer := kafka.NewProducer(brokers, logger)
		t.Cleanup(func() { _ = producer.Close() })
		publisher = bookingEvents.NewBookingPublisher(producer, logger)
	}

	svc := application.NewBookingService(
		repository.NewBookingRepository(store),
		adapter.NewMockNotifier(logger),
		publisher,
		logger,
	)

	stack := &bookingStack{Service: svc}
	if len(brokers) > 0 {
		groupID := fmt.Sprintf("test-booking-%s", uuid.New().String()[:8])
		stack.Consumer = bookingEvents.NewBookingCommandConsumer(brokers, groupID, svc, logger)
		t.Cleanup(func() { _ = stack.Consumer.Close() })
	}
	return stack
}

// publishTestEvent publishes a CloudEvent to Kafka.
func publishTestEvent(t *testing.T, brokers []string, topic, source, eventType string, data interface{}) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	producer := kafka.NewProducer(brokers, logger)
	defer func() { _ = producer.Close() }()

	ce, err := kafka.NewCloudEvent(source, eventType, data)
	require.NoError(t, err, "failed to create cloud event")

	err = producer.PublishEvent(context.Background(), topic, ce)
	require.NoError(t, err, "failed to publish event")
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
