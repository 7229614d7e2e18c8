package db

import (
	"strconv"
	"time"

	"github.com/jsphweid/chordex/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// MaxBatch is the most keys sent in one BatchGetItem call.
const MaxBatch = 10

// MaxAttempts bounds how often unprocessed keys of one batch are resent.
const MaxAttempts = 5

var retryDelay = 100 * time.Millisecond

type MetadataStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewMetadataStore(client dynamodbiface.DynamoDBAPI, table string) *MetadataStore {
	return &MetadataStore{client: client, table: table}
}

// Connect opens a DynamoDB client against endpoint, usually a local
// DynamoDB during development.
func Connect(endpoint, region, table string) (*MetadataStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return NewMetadataStore(dynamodb.New(sess), table), nil
}

// GetMidiMetadatas looks filenames up in batches. Files without an item are
// missing from the result.
func (s *MetadataStore) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)
	for start := 0; start < len(filenames); start += MaxBatch {
		end := start + MaxBatch
		if end > len(filenames) {
			end = len(filenames)
		}
		if err := s.getBatch(filenames[start:end], res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *MetadataStore) getBatch(filenames []string, res map[string]model.MidiMetadata) error {
	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	request := map[string]*dynamodb.KeysAndAttributes{
		s.table: {Keys: keys},
	}
	for attempt := 0; unprocessed(request) > 0; attempt++ {
		if attempt == MaxAttempts {
			return errors.Errorf("DynamoDB left %v keys unprocessed after %v attempts", unprocessed(request), MaxAttempts)
		}
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * retryDelay)
		}

		dbres, err := s.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return errors.Wrap(err, "Error from DynamoDB")
		}
		for _, v := range dbres.Responses[s.table] {
			pk := stringAttr(v, "PK")
			if pk == "" {
				continue
			}
			res[pk] = toMetadata(v)
		}
		request = dbres.UnprocessedKeys
	}
	return nil
}

func toMetadata(item map[string]*dynamodb.AttributeValue) model.MidiMetadata {
	var m model.MidiMetadata
	if year, ok := item["Year"]; ok && year.N != nil {
		y, _ := strconv.ParseUint(*year.N, 10, 32)
		m.Year = uint(y)
	}
	m.Artist = stringAttr(item, "Artist")
	m.Release = stringAttr(item, "Release")
	m.Title = stringAttr(item, "Title")
	return m
}

func unprocessed(request map[string]*dynamodb.KeysAndAttributes) int {
	n := 0
	for _, ka := range request {
		if ka != nil {
			n += len(ka.Keys)
		}
	}
	return n
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if v, ok := item[name]; ok && v.S != nil {
		return *v.S
	}
	return ""
}
