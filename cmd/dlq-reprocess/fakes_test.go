package main

import (
	"fmt"

	"github.com/IBM/sarama"
)

type offsetRange struct{ oldest, newest int64 }

type fakeOffsets struct {
	partitions    []int32
	ranges        map[int32]offsetRange
	partitionsErr error
	offsetErr     error
	closed        bool
}

func (f *fakeOffsets) GetOffset(_ string, partition int32, at int64) (int64, error) {
	if f.offsetErr != nil {
		return 0, f.offsetErr
	}
	r := f.ranges[partition]
	if at == sarama.OffsetOldest {
		return r.oldest, nil
	}
	return r.newest, nil
}

func (f *fakeOffsets) Partitions(string) ([]int32, error) {
	return append([]int32(nil), f.partitions...), f.partitionsErr
}

func (f *fakeOffsets) Close() error {
	f.closed = true
	return nil
}

type consumeCall struct {
	partition int32
	offset    int64
}

type fakeSource struct {
	consumers  map[int32]*fakePartition
	consumeErr error
	calls      []consumeCall
	closed     bool
}

func (f *fakeSource) ConsumePartition(_ string, partition int32, offset int64) (partitionConsumer, error) {
	f.calls = append(f.calls, consumeCall{partition: partition, offset: offset})
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	pc, ok := f.consumers[partition]
	if !ok {
		return nil, fmt.Errorf("no consumer for partition %d", partition)
	}
	return pc, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

type fakePartition struct {
	messages chan *sarama.ConsumerMessage
	errors   chan *sarama.ConsumerError
	closed   bool
}

// drained отдаёт сообщения партиции по порядку и закрывает каналы.
func drained(partition int32, values ...[]byte) *fakePartition {
	pc := &fakePartition{
		messages: make(chan *sarama.ConsumerMessage, len(values)),
		errors:   make(chan *sarama.ConsumerError),
	}
	for i, v := range values {
		pc.messages <- &sarama.ConsumerMessage{Partition: partition, Offset: int64(i), Value: v}
	}
	close(pc.messages)
	close(pc.errors)
	return pc
}

// silent никогда не присылает сообщений.
func silent() *fakePartition {
	return &fakePartition{
		messages: make(chan *sarama.ConsumerMessage),
		errors:   make(chan *sarama.ConsumerError, 1),
	}
}

func (p *fakePartition) Messages() <-chan *sarama.ConsumerMessage { return p.messages }
func (p *fakePartition) Errors() <-chan *sarama.ConsumerError     { return p.errors }

func (p *fakePartition) Close() error {
	p.closed = true
	return nil
}

type fakeProducer struct {
	sendErr error
	sent    []*sarama.ProducerMessage
	closed  bool
}

func (f *fakeProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if f.sendErr != nil {
		return 0, 0, f.sendErr
	}
	f.sent = append(f.sent, msg)
	return 0, int64(len(f.sent)), nil
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}
