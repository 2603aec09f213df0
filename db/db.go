package db

import (
	"strconv"

	"github.com/jsphweid/notewalk/constants"
	"github.com/jsphweid/notewalk/model"
	"github.com/jsphweid/notewalk/util"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "notewalk-metadata"

// GetSongMetadatas looks up song metadata for any number of midi
// filenames, batching the underlying requests.
func GetSongMetadatas(filenames []string) map[string]model.SongMetadata {
	res := make(map[string]model.SongMetadata)
	for start := 0; start < len(filenames); start += constants.MetadataBatchSize {
		end := util.Min(start+constants.MetadataBatchSize, len(filenames))
		for k, v := range getBatch(filenames[start:end]) {
			res[k] = v
		}
	}
	return res
}

func getBatch(filenames []string) map[string]model.SongMetadata {
	res := make(map[string]model.SongMetadata)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var s model.SongMetadata
		if v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		s.Artist = *v["Artist"].S
		s.Release = *v["Release"].S
		s.Title = *v["Title"].S
		res[*v["PK"].S] = s
	}

	return res
}
