//go:build !unix

package main

import "fmt"

func (d *demo) s2() error {
	fmt.Println("raw descriptors are only shown on unix")
	return nil
}

func (d *demo) checked() {
	fmt.Println("raw descriptors are only shown on unix")
}
