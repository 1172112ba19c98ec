package handlers

import (
	"context"

	"pushkit_api/tools"
	"pushkit_api/types"

	"cloud.google.com/go/firestore"
)

// RegistrationStore persists client messaging registrations.
type RegistrationStore interface {
	Save(ctx context.Context, registration types.MessagingRegistration) error
	Get(ctx context.Context, clientId string) (*types.MessagingRegistration, error)
	List(ctx context.Context) ([]types.MessagingRegistration, error)
	Delete(ctx context.Context, clientId string) error
}

// FirestoreRegistrationStore keeps one document per client id.
type FirestoreRegistrationStore struct {
	client *firestore.Client
}

func NewFirestoreRegistrationStore(client *firestore.Client) *FirestoreRegistrationStore {
	return &FirestoreRegistrationStore{client: client}
}

func (s *FirestoreRegistrationStore) Save(ctx context.Context, registration types.MessagingRegistration) error {
	return tools.SetFirestoreDocument(ctx, s.client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, registration.ClientId, registration)
}

func (s *FirestoreRegistrationStore) Get(ctx context.Context, clientId string) (*types.MessagingRegistration, error) {
	doc, err := tools.GetFirestoreDocument(ctx, s.client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, clientId)
	if err != nil || doc == nil {
		return nil, err
	}

	registration := registrationFromDocument(doc)
	return &registration, nil
}

func (s *FirestoreRegistrationStore) List(ctx context.Context) ([]types.MessagingRegistration, error) {
	docs, err := tools.GetFirestoreDocuments(ctx, s.client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION)
	if err != nil {
		return nil, err
	}

	registrations := make([]types.MessagingRegistration, 0, len(docs))
	for _, doc := range docs {
		registrations = append(registrations, registrationFromDocument(doc))
	}

	return registrations, nil
}

func (s *FirestoreRegistrationStore) Delete(ctx context.Context, clientId string) error {
	return tools.DeleteFirestoreDocument(ctx, s.client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, clientId)
}

func registrationFromDocument(doc map[string]interface{}) types.MessagingRegistration {
	clientId, _ := doc["clientId"].(string)
	token, _ := doc["token"].(string)
	owner, _ := doc["owner"].(string)
	return types.MessagingRegistration{ClientId: clientId, Token: token, Owner: owner}
}
