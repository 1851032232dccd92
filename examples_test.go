package skipnav

import (
	"encoding/json"
	"fmt"
)

func ExampleMap_Put() {
	m := New[int, string](NaturalOrder[int]())
	m.Put(1, "one")
	m.Put(2, "two")
	old, replaced := m.Put(2, "deux")
	fmt.Println(m.Len(), old, replaced)
	// Output: 2 two true
}

func ExampleMap_Get() {
	m := New[int, string](NaturalOrder[int]())
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Get(1)
	fmt.Printf("%s %t\n", val, ok)
	// Output: one true
}

func ExampleMap_Remove() {
	m := New[int, string](NaturalOrder[int]())
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Remove(1)
	fmt.Printf("%s %t\n", val, ok)
	fmt.Println(m.Len())
	// Output: one true
	// 1
}

func ExampleMap_All() {
	m := New[int, string](NaturalOrder[int]())
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")
	for k, v := range m.All() {
		fmt.Printf("%d:%s ", k, v)
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleMap_CeilingKey() {
	m := New[int, string](NaturalOrder[int]())
	for _, k := range []int{300, 600, 900, 1000, 700, 400, 100, 200, 500, 800} {
		m.Put(k, "")
	}
	ceiling, _ := m.CeilingKey(456)
	floor, _ := m.FloorKey(456)
	_, ok := m.CeilingKey(99999)
	fmt.Println(ceiling, floor, ok)
	// Output: 500 400 false
}

func ExampleSet_PollFirst() {
	s := NewSetFromKeys(NaturalOrder[string](), []string{"pear", "apple", "fig"})
	for {
		k, ok := s.PollFirst()
		if !ok {
			break
		}
		fmt.Print(k, " ")
	}
	fmt.Println(s.Len())
	// Output: apple fig pear 0
}

func ExampleSet_MarshalJSON() {
	s := NewSet(NullsFirst(NaturalOrder[int]()))
	s.Add(Value(2))
	s.Add(Null[int]())
	s.Add(Value(1))
	out, _ := json.Marshal(s)
	fmt.Println(string(out))
	// Output: [null,1,2]
}

func ExampleCursor() {
	s := NewSetFromKeys(NaturalOrder[int](), []int{3, 1, 2})
	c := s.Cursor()
	for c.HasNext() {
		k, _ := c.Next()
		fmt.Print(k)
	}
	fmt.Println()
	// Output: 123
}
