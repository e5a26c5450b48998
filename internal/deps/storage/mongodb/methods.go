package mongodb

import (
  "context"
  "errors"
  "fmt"
  "reflect"

  log "github.com/sirupsen/logrus"
  "go.mongodb.org/mongo-driver/mongo/options"
)

type CommonParams struct {
  Database   string
  Collection string
  StructType any
}

type ScanParams struct {
  CommonParams

  Filters  map[string]any
  Callback func(ctx context.Context, value any) error
}

func (c *Client) Scan(ctx context.Context, params ScanParams) error {
  filters := makeBsonDFilters(params.Filters)

  cursor, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    Find(ctx, filters)

  if err != nil {
    return fmt.Errorf("c.client.Database.Collection.Find: %w", err)
  }

  defer func() {
    if err = cursor.Close(ctx); err != nil {
      log.Errorf("mongodb.Scan: cursor.Close: %v", err)
    }
  }()

  for cursor.Next(ctx) {
    doc := newDocument(params.StructType)

    if err = cursor.Decode(doc); err != nil {
      return fmt.Errorf("cursor.Decode: %T: %w", doc, err)
    }

    if err = params.Callback(ctx, doc); err != nil {
      return fmt.Errorf("params.Callback: %T: %w", doc, err)
    }
  }

  return nil
}

type GetParams struct {
  CommonParams

  Filters map[string]any
}

func (c *Client) Get(ctx context.Context, params GetParams) (any, error) {
  out, err := c.Find(ctx, FindParams{
    CommonParams: params.CommonParams,
    Filters:      params.Filters,
    Limit:        1,
  })
  if err != nil {
    return nil, fmt.Errorf("c.Find: %w", err)
  }

  if len(out) == 0 {
    return nil, ErrNotFound
  }

  return out[0], nil
}

type FindParams struct {
  CommonParams

  Filters map[string]any
  Limit   int64
}

func (c *Client) Find(ctx context.Context, params FindParams) ([]any, error) {
  filters := makeBsonDFilters(params.Filters)

  opts := options.Find()
  if params.Limit != 0 {
    opts.SetLimit(params.Limit)
  }

  cursor, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    Find(ctx, filters, opts)

  if err != nil {
    return nil, fmt.Errorf("c.client.Database.Collection.Find: %w", err)
  }

  defer func() {
    if err = cursor.Close(ctx); err != nil {
      log.Errorf("mongodb.Find: cursor.Close: %v", err)
    }
  }()

  out := make([]any, 0, params.Limit)

  for cursor.Next(ctx) {
    doc := newDocument(params.StructType)

    if err = cursor.Decode(doc); err != nil {
      return nil, fmt.Errorf("cursor.Decode: %T: %w", doc, err)
    }

    out = append(out, doc)
  }

  return out, nil
}

type InsertParams struct {
  CommonParams

  Document any
}

func (c *Client) Insert(ctx context.Context, params InsertParams) (id any, err error) {
  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    InsertOne(ctx, params.Document)

  if err != nil {
    return nil, fmt.Errorf("c.client.Database.Collection.InsertOne: %w", err)
  }

  return res.InsertedID, nil
}

type UpdateParams struct {
  GetParams

  Document any
}

func (c *Client) Update(ctx context.Context, params UpdateParams) (id any, err error) {
  filters := makeBsonDFilters(params.GetParams.Filters)
  updates := makeBsonDUpdates(params.Document)

  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    UpdateOne(ctx, filters, updates)

  if err != nil {
    return nil, fmt.Errorf("c.client.Database.Collection.UpdateOne: %w", err)
  }

  return res.UpsertedID, nil
}

func (c *Client) Upsert(ctx context.Context, params UpdateParams) (id any, err error) {
  _, err = c.Get(ctx, params.GetParams)
  if err != nil {
    if errors.Is(err, ErrNotFound) {
      id, err = c.Insert(ctx, InsertParams{
        CommonParams: params.CommonParams,
        Document:     params.Document,
      })
      if err != nil {
        return nil, fmt.Errorf("c.Insert: %w", err)
      }

      return id, nil
    }

    return nil, fmt.Errorf("c.Get: %w", err)
  }

  id, err = c.Update(ctx, params)
  if err != nil {
    return nil, fmt.Errorf("c.Update: %w", err)
  }

  return id, nil
}

type DeleteParams struct {
  CommonParams

  Filters map[string]any
}

func (c *Client) Delete(ctx context.Context, params DeleteParams) (count int64, err error) {
  filters := makeBsonDFilters(params.Filters)

  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    DeleteMany(ctx, filters)

  if err != nil {
    return 0, fmt.Errorf("c.client.Database.Collection.DeleteMany: %w", err)
  }

  return res.DeletedCount, nil
}

func newDocument(structType any) any {
  if structType == nil {
    return any(make(map[string]any))
  }

  typ := reflect.TypeOf(structType)

  return reflect.New(typ).Interface()
}
