package mongodb

import (
  "reflect"

  "go.mongodb.org/mongo-driver/bson"
)

func makeBsonDUpdates(document any) bson.D {
  updates := bson.D{}

  typ := reflect.TypeOf(document)
  value := reflect.ValueOf(document)

  if typ.Kind() == reflect.Ptr {
    typ = typ.Elem()
    value = value.Elem()
  }

  for i := 0; i < typ.NumField(); i++ {
    field := typ.Field(i)

    val := value.Field(i)
    tag := field.Tag.Get("bson")

    if tag == "" || tag == "-" {
      continue
    }

    updates = append(updates, bson.E{
      Key:   tag,
      Value: val.Interface(),
    })
  }

  return bson.D{{
    Key:   "$set",
    Value: updates,
  }}
}

func makeBsonDFilters(kv map[string]any) bson.D {
  out := bson.D{}

  for key, value := range kv {
    out = append(out, bson.E{
      Key:   key,
      Value: value,
    })
  }

  return out
}
