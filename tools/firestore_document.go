package tools

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sets a document in a Firestore collection
func SetFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string, data interface{}) error {
	docRef := client.Collection(collection).Doc(documentName)

	_, err := docRef.Set(c, data)

	return err
}

// Gets a document from a Firestore collection. A missing document is (nil, nil).
func GetFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string) (map[string]interface{}, error) {
	docRef := client.Collection(collection).Doc(documentName)

	doc, err := docRef.Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	return doc.Data(), nil
}

func GetFirestoreDocuments(c context.Context, client *firestore.Client, collection string) ([]map[string]interface{}, error) {
	iter := client.Collection(collection).Documents(c)
	defer iter.Stop()

	var result []map[string]interface{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		result = append(result, doc.Data())
	}

	return result, nil
}

func DeleteFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string) error {
	docRef := client.Collection(collection).Doc(documentName)

	_, err := docRef.Delete(c)

	return err
}
