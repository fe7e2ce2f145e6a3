// FILE: lixenwraith/flexop/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/flexop"
)

func main() {
	var (
		i     int64
		f     float64
		s     string
		noarg bool
		order = -1

		vi flexop.Vec
		vf flexop.Vec
		vs flexop.Vec
	)

	presets := []string{
		"-i 22",
		"-f 1.2",
		"-s hello",
		`-vi " 1 2 1 3 1 4"`,
		`-vf " 0.1 2e-3 1.2 3.33333 2.1 3.4"`,
		`-vs " hello this world"`,
	}

	p := flexop.New()

	for _, text := range presets {
		if err := p.Preset(text); err != nil {
			log.Fatalf("preset %q: %v", text, err)
		}
	}

	fmt.Println("Preset command line:")
	fmt.Println("----------------------------------")
	for _, text := range presets {
		fmt.Println(text)
	}
	fmt.Print("----------------------------------\n\n\n")

	for _, err := range []error{
		p.RegisterInt("i", "int", &i),
		p.RegisterFloat("f", "float", &f),
		p.RegisterString("s", "string", &s),
		p.RegisterVecInt("vi", "vector of int", &vi),
		p.RegisterVecFloat("vf", "vector of float", &vf),
		p.RegisterVecString("vs", "vector of string", &vs),
		p.RegisterFlag("noarg", "bool value", &noarg),
		p.RegisterKeyword("order", "order of digital number", []string{"one", "two", "three", "four"}, &order),
	} {
		if err != nil {
			log.Fatalf("register: %v", err)
		}
	}

	p.MustInit(os.Args)
	defer p.Finalize()

	fmt.Println("Parsed parameters:")
	fmt.Println("----------------------------------")
	printValues(i, f, s, &vi, &vf, &vs)
	fmt.Printf("flexop: key: \"noarg\": value: %v\n", noarg)
	if kw, err := p.GetKeyword("order"); err == nil && kw != "" {
		fmt.Printf("flexop: key: \"order\": value: %s\n", kw)
	}
	fmt.Print("----------------------------------\n\n\n")

	for _, err := range []error{
		p.SetInt("i", 8),
		p.SetFloat("f", 1.11111),
		p.SetString("s", "usa"),
		p.SetVecInt("vi", "8 8 8 8 4 4 4 4"),
		p.SetVecFloat("vf", "11.11 2.2 3.1 4.4 4e-8"),
		p.SetVecString("vs", "a b c d z f g g g gg hi jill hill"),
	} {
		if err != nil {
			log.Fatalf("set: %v", err)
		}
	}

	fmt.Println("Changed parsed parameters through set option:")
	fmt.Println("----------------------------------")
	printValues(i, f, s, &vi, &vf, &vs)
	fmt.Print("----------------------------------\n\n\n")

	if err := p.ShowUsed(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func printValues(i int64, f float64, s string, vecs ...*flexop.Vec) {
	fmt.Printf("flexop: key: \"i\": %d\n", i)
	fmt.Printf("flexop: key: \"f\": %g\n", f)
	fmt.Printf("flexop: key: \"s\": %s\n", s)
	for _, v := range vecs {
		fmt.Printf("flexop: vec (%s, %d): %s\n", v.Kind(), v.Len(), v)
	}
}
